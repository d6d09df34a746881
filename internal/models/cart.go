package models

// CartLine is one product entry in a cart. Name, price and image are
// snapshotted when the product is first added.
type CartLine struct {
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
	Image     string  `json:"image"`
}

// Customer is the checkout contact block. It is transient: it only
// exists for the duration of one order submission and is denormalized
// into the order header on success.
type Customer struct {
	FullName       string `json:"fullName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone"`
	Address        string `json:"address" validate:"required"`
	DeliveryOption string `json:"deliveryOption"`
}

// Totals is the pricing breakdown echoed to the client.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	ShippingFee float64 `json:"shippingFee"`
	GrandTotal  float64 `json:"grandTotal"`
}

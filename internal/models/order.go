package models

import "time"

// OrderItem snapshots one cart line at order time. Name and price are
// copied from the line rather than joined from products, so historical
// orders stay stable when the catalog changes.
type OrderItem struct {
	ID        uint    `json:"-" gorm:"primaryKey"`
	OrderID   uint    `json:"order_id"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name" gorm:"type:varchar(255)"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

// Order is a persisted order header with its items. The customer is
// denormalized into the header; PaymentIntentID holds a synthetic
// placeholder until a real payment provider is wired in.
type Order struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	CustomerName    string      `json:"customer_name" gorm:"type:varchar(255)"`
	CustomerEmail   string      `json:"customer_email" gorm:"type:varchar(255)"`
	Total           float64     `json:"total"`
	PaymentIntentID string      `json:"payment_intent_id" gorm:"column:payment_intent_id;type:varchar(100)"`
	CreatedAt       time.Time   `json:"created_at"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

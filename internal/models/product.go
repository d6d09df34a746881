package models

// Product is a catalog item managed through the admin endpoints and read
// by the storefront. Stock gates the add-to-cart UI; whether it is
// decremented at order time is decided by the configured stock policy.
type Product struct {
	ID                  uint    `json:"id" gorm:"primaryKey"`
	Name                string  `json:"name" gorm:"type:varchar(255)" validate:"required,min=2,max=255"`
	Category            string  `json:"category" gorm:"type:varchar(100)"`
	Price               float64 `json:"price" validate:"gte=0"`
	Stock               int     `json:"stock" validate:"gte=0"`
	Image               string  `json:"image"`
	Description         string  `json:"description"`
	Vegan               bool    `json:"vegan"`
	Organic             bool    `json:"organic"`
	Ingredients         string  `json:"ingredients"`
	SustainabilityScore float64 `json:"sustainability_score" gorm:"column:sustainability_score"`
}

package repositories

import (
	"dailydose/internal/models"
)

// StockReserver is the view of product stock available inside an order
// write. ReserveStock decrements stock for one product or fails the
// whole order; implementations run it in the same transaction as the
// order rows.
type StockReserver interface {
	ReserveStock(productID uint, qty int) error
}

// OrderRepository defines the interface for order data access.
// Create persists the header and all items atomically: either every row
// commits or none do. The reserve callback runs inside the same
// transaction so stock adjustments roll back together with the order.
type OrderRepository interface {
	Create(order *models.Order, reserve func(StockReserver) error) error
	GetAll() ([]models.Order, error)
	GetByID(id uint) (*models.Order, error)
}

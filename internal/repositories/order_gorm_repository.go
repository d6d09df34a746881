package repositories

import (
	"errors"

	"dailydose/internal/apperrors"
	"dailydose/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create persists the order header and its items in one transaction,
// then runs the reserve callback in the same transaction. A failure at
// any step rolls everything back, so a failed submission leaves no
// partial order behind.
func (r *GORMOrderRepository) Create(order *models.Order, reserve func(StockReserver) error) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Creating the header also batch-inserts the associated items
		// with the generated order ID.
		if err := tx.Create(order).Error; err != nil {
			return apperrors.Persistencef("failed to create order: %v", err)
		}
		if reserve != nil {
			if err := reserve(&gormStockReserver{tx: tx}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// Clear the IDs GORM assigned before the rollback so callers do
		// not hold references to rows that never committed.
		order.ID = 0
		for i := range order.Items {
			order.Items[i].ID = 0
			order.Items[i].OrderID = 0
		}
	}
	return err
}

// GetAll retrieves all orders with their items, newest first.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, apperrors.Persistencef("failed to get all orders: %v", err)
	}
	return orders, nil
}

// GetByID retrieves a single order with its items.
func (r *GORMOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("order with ID %d not found", id)
		}
		return nil, apperrors.Persistencef("failed to get order %d: %v", id, err)
	}
	return &order, nil
}

// gormStockReserver applies stock decrements inside the order transaction.
type gormStockReserver struct {
	tx *gorm.DB
}

func (g *gormStockReserver) ReserveStock(productID uint, qty int) error {
	var product models.Product
	if err := g.tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFoundf("product with ID %d not found", productID)
		}
		return apperrors.Persistencef("failed to lock product %d: %v", productID, err)
	}
	if product.Stock < qty {
		return apperrors.Validationf("insufficient stock for product %s (requested: %d, available: %d)",
			product.Name, qty, product.Stock)
	}
	if err := g.tx.Model(&product).Update("stock", product.Stock-qty).Error; err != nil {
		return apperrors.Persistencef("failed to decrement stock for product %d: %v", productID, err)
	}
	return nil
}

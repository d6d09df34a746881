package repositories

import (
	"errors"

	"dailydose/internal/apperrors"
	"dailydose/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products ordered by name.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("name").Find(&products).Error; err != nil {
		return nil, apperrors.Persistencef("failed to get all products: %v", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("product with ID %d not found", id)
		}
		return nil, apperrors.Persistencef("failed to get product %d: %v", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return apperrors.Persistencef("failed to create product: %v", err)
	}
	return nil
}

// Update updates an existing product, including zero-valued fields.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product)
	if res.Error != nil {
		return apperrors.Persistencef("failed to update product: %v", res.Error)
	}
	if res.RowsAffected == 0 {
		// Save does not return ErrRecordNotFound on a missed update.
		return apperrors.NotFoundf("product with ID %d not found for update", product.ID)
	}
	return nil
}

// Delete deletes a product by its ID.
func (r *GORMProductRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.Persistencef("failed to delete product: %v", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFoundf("product with ID %d not found for deletion", id)
	}
	return nil
}

// UpdateStock sets the stock level of a product.
func (r *GORMProductRepository) UpdateStock(id uint, stock int) error {
	res := r.db.Model(&models.Product{}).Where("id = ?", id).Update("stock", stock)
	if res.Error != nil {
		return apperrors.Persistencef("failed to update stock for product %d: %v", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFoundf("product with ID %d not found for stock update", id)
	}
	return nil
}

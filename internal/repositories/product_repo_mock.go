package repositories

import (
	"sort"
	"sync"

	"dailydose/internal/apperrors"
	"dailydose/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[uint]models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// GetAll returns all products ordered by name.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	sort.Slice(productList, func(i, j int) bool { return productList[i].Name < productList[j].Name })
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, apperrors.NotFoundf("product with ID %d not found", id)
	}
	return &product, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		product.ID = r.nextID
	}
	if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return apperrors.NotFoundf("product with ID %d not found for update", product.ID)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return apperrors.NotFoundf("product with ID %d not found for deletion", id)
	}
	delete(r.products, id)
	return nil
}

// UpdateStock sets the stock level of a product.
func (r *MockProductRepository) UpdateStock(id uint, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return apperrors.NotFoundf("product with ID %d not found for stock update", id)
	}
	product.Stock = stock
	r.products[id] = product
	return nil
}

// reserveStock implements the StockReserver contract for the in-memory
// order repository. The caller holds the order repository's lock; this
// one only guards the product map.
func (r *MockProductRepository) reserveStock(productID uint, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[productID]
	if !ok {
		return apperrors.NotFoundf("product with ID %d not found", productID)
	}
	if product.Stock < qty {
		return apperrors.Validationf("insufficient stock for product %s (requested: %d, available: %d)",
			product.Name, qty, product.Stock)
	}
	product.Stock -= qty
	r.products[productID] = product
	return nil
}

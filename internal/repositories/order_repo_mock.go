package repositories

import (
	"sort"
	"sync"
	"time"

	"dailydose/internal/apperrors"
	"dailydose/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// It honors the same all-or-nothing Create contract as the GORM
// implementation: a failing reserve callback leaves no order behind.
type MockOrderRepository struct {
	orders   map[uint]models.Order
	nextID   uint
	products *MockProductRepository // stock source for reserve, may be nil
	failWith error                  // injected Create failure for tests
	mu       sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
// The product repository is used to apply stock reservations; pass nil
// when the stock policy never reserves.
func NewMockOrderRepository(products *MockProductRepository) *MockOrderRepository {
	return &MockOrderRepository{
		orders:   make(map[uint]models.Order),
		nextID:   1,
		products: products,
	}
}

// FailNextCreateWith makes the next Create call fail with err, simulating
// a write failure mid-submission.
func (r *MockOrderRepository) FailNextCreateWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failWith = err
}

// Create stores the order with a generated ID, stamping the items with
// the order's ID the way the database write would.
func (r *MockOrderRepository) Create(order *models.Order, reserve func(StockReserver) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		err := r.failWith
		r.failWith = nil
		return err
	}

	if reserve != nil {
		if err := reserve(mockStockReserver{products: r.products}); err != nil {
			return err
		}
	}

	order.ID = r.nextID
	r.nextID++
	order.CreatedAt = time.Now()
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	r.orders[order.ID] = *order
	return nil
}

// GetAll returns all orders, newest first.
func (r *MockOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orderList = append(orderList, order)
	}
	sort.Slice(orderList, func(i, j int) bool {
		return orderList[i].CreatedAt.After(orderList[j].CreatedAt)
	})
	return orderList, nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id uint) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, apperrors.NotFoundf("order with ID %d not found", id)
	}
	return &order, nil
}

type mockStockReserver struct {
	products *MockProductRepository
}

func (m mockStockReserver) ReserveStock(productID uint, qty int) error {
	if m.products == nil {
		return apperrors.Persistencef("no product store configured for stock reservation")
	}
	return m.products.reserveStock(productID, qty)
}

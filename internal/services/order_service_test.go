package services_test

import (
	"strings"
	"testing"

	"dailydose/internal/apperrors"
	"dailydose/internal/models"
	"dailydose/internal/repositories"
	"dailydose/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepo is a testify mock of repositories.OrderRepository.
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(order *models.Order, reserve func(repositories.StockReserver) error) error {
	args := m.Called(order, reserve)
	return args.Error(0)
}

func (m *MockOrderRepo) GetAll() ([]models.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepo) GetByID(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

// recordingPublisher captures published order events.
type recordingPublisher struct {
	events []map[string]any
}

func (p *recordingPublisher) PublishOrderPlaced(event map[string]any) error {
	p.events = append(p.events, event)
	return nil
}

func validCustomer() *models.Customer {
	return &models.Customer{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Address:  "12 Analytical Way",
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	mockRepo := new(MockOrderRepo)
	publisher := &recordingPublisher{}
	service := services.NewOrderService(mockRepo, services.KeepStock{}, publisher, 5)

	mockRepo.On("Create", mock.AnythingOfType("*models.Order"), mock.Anything).
		Run(func(args mock.Arguments) {
			order := args.Get(0).(*models.Order)
			order.ID = 7
		}).
		Return(nil).Once()

	confirmation, err := service.PlaceOrder(services.PlaceOrderRequest{
		Items: []models.CartLine{
			{ProductID: 1, Name: "Organic Green Tea", Price: 10, Qty: 2},
		},
		Customer: validCustomer(),
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(7), confirmation.OrderID)
	assert.Equal(t, 20.0, confirmation.Totals.Subtotal)
	assert.Equal(t, 5.0, confirmation.Totals.ShippingFee)
	assert.Equal(t, 25.0, confirmation.Totals.GrandTotal)
	assert.Equal(t, "Ada Lovelace", confirmation.Customer.FullName)
	assert.Len(t, confirmation.Items, 1)
	mockRepo.AssertExpectations(t)

	// The persisted header carries the recomputed total and a synthetic
	// payment reference.
	persisted := mockRepo.Calls[0].Arguments.Get(0).(*models.Order)
	assert.Equal(t, 25.0, persisted.Total)
	assert.True(t, strings.HasPrefix(persisted.PaymentIntentID, "test-payment-"))
	assert.Len(t, persisted.Items, 1)
	assert.Equal(t, "Organic Green Tea", persisted.Items[0].Name)

	assert.Len(t, publisher.events, 1)
	assert.Equal(t, uint(7), publisher.events[0]["orderID"])
}

func TestOrderService_PlaceOrderIgnoresClientTotals(t *testing.T) {
	// A tampered price on the line still prices the order from the line
	// data the server sees; there is no client total field to trust.
	mockRepo := new(MockOrderRepo)
	service := services.NewOrderService(mockRepo, services.KeepStock{}, nil, 5)

	mockRepo.On("Create", mock.AnythingOfType("*models.Order"), mock.Anything).Return(nil).Once()

	confirmation, err := service.PlaceOrder(services.PlaceOrderRequest{
		Items: []models.CartLine{
			{ProductID: 1, Name: "Tea", Price: 2.25, Qty: 4},
		},
		Customer: validCustomer(),
	})

	assert.NoError(t, err)
	assert.Equal(t, 9.0, confirmation.Totals.Subtotal)
	assert.Equal(t, 14.0, confirmation.Totals.GrandTotal)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_PlaceOrderValidation(t *testing.T) {
	mockRepo := new(MockOrderRepo)
	service := services.NewOrderService(mockRepo, services.KeepStock{}, nil, 5)

	// Missing customer
	_, err := service.PlaceOrder(services.PlaceOrderRequest{
		Items: []models.CartLine{{ProductID: 1, Price: 10, Qty: 1}},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// Missing items
	_, err = service.PlaceOrder(services.PlaceOrderRequest{Customer: validCustomer()})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// Empty items with missing customer fails validation, never panics
	_, err = service.PlaceOrder(services.PlaceOrderRequest{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// Customer with a malformed email
	bad := validCustomer()
	bad.Email = "not-an-email"
	_, err = service.PlaceOrder(services.PlaceOrderRequest{
		Items:    []models.CartLine{{ProductID: 1, Price: 10, Qty: 1}},
		Customer: bad,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// Non-positive quantity
	_, err = service.PlaceOrder(services.PlaceOrderRequest{
		Items:    []models.CartLine{{ProductID: 1, Price: 10, Qty: 0}},
		Customer: validCustomer(),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// No write was ever attempted
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrderPersistenceFailure(t *testing.T) {
	mockRepo := new(MockOrderRepo)
	service := services.NewOrderService(mockRepo, services.KeepStock{}, nil, 5)

	mockRepo.On("Create", mock.AnythingOfType("*models.Order"), mock.Anything).
		Return(apperrors.Persistencef("failed to create order: connection reset")).Once()

	_, err := service.PlaceOrder(services.PlaceOrderRequest{
		Items:    []models.CartLine{{ProductID: 1, Price: 10, Qty: 2}},
		Customer: validCustomer(),
	})
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_FailedSubmissionLeavesNoOrder(t *testing.T) {
	// Round-trip property: after a reported failure, reading the order
	// back must miss.
	products := repositories.NewMockProductRepository()
	orders := repositories.NewMockOrderRepository(products)
	service := services.NewOrderService(orders, services.KeepStock{}, nil, 5)

	orders.FailNextCreateWith(apperrors.Persistencef("insert failed for item 2 of 3"))

	_, err := service.PlaceOrder(services.PlaceOrderRequest{
		Items: []models.CartLine{
			{ProductID: 1, Name: "A", Price: 1, Qty: 1},
			{ProductID: 2, Name: "B", Price: 2, Qty: 1},
			{ProductID: 3, Name: "C", Price: 3, Qty: 1},
		},
		Customer: validCustomer(),
	})
	assert.ErrorIs(t, err, apperrors.ErrPersistence)

	_, err = service.GetOrderByID(1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOrderService_DecrementStockPolicy(t *testing.T) {
	products := repositories.NewMockProductRepository()
	assert.NoError(t, products.Create(&models.Product{ID: 1, Name: "Tea", Price: 10, Stock: 5}))
	orders := repositories.NewMockOrderRepository(products)
	service := services.NewOrderService(orders, services.DecrementStock{}, nil, 5)

	confirmation, err := service.PlaceOrder(services.PlaceOrderRequest{
		Items:    []models.CartLine{{ProductID: 1, Name: "Tea", Price: 10, Qty: 2}},
		Customer: validCustomer(),
	})
	assert.NoError(t, err)
	assert.NotZero(t, confirmation.OrderID)

	product, err := products.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, 3, product.Stock)

	// Ordering more than the remaining stock fails the submission
	_, err = service.PlaceOrder(services.PlaceOrderRequest{
		Items:    []models.CartLine{{ProductID: 1, Name: "Tea", Price: 10, Qty: 10}},
		Customer: validCustomer(),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "insufficient stock")
}

func TestStockPolicyFromName(t *testing.T) {
	assert.IsType(t, services.DecrementStock{}, services.StockPolicyFromName("decrement"))
	assert.IsType(t, services.KeepStock{}, services.StockPolicyFromName("keep"))
	assert.IsType(t, services.KeepStock{}, services.StockPolicyFromName(""))
}

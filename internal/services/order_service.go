package services

import (
	"fmt"
	"log"
	"time"

	"dailydose/internal/apperrors"
	"dailydose/internal/models"
	"dailydose/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// OrderEventPublisher publishes order lifecycle events to the message
// broker. Publishing is best-effort: a broker failure never fails the
// order that already committed.
type OrderEventPublisher interface {
	PublishOrderPlaced(event map[string]any) error
}

// PlaceOrderRequest is the checkout submission: the full cart plus the
// customer contact block.
type PlaceOrderRequest struct {
	Items    []models.CartLine `json:"items"`
	Customer *models.Customer  `json:"customer"`
}

// OrderConfirmation is returned to the client after a successful
// submission. Items and customer are echoed back; totals are the
// server-computed breakdown.
type OrderConfirmation struct {
	OrderID  uint              `json:"orderId"`
	Message  string            `json:"message"`
	Items    []models.CartLine `json:"items"`
	Customer models.Customer   `json:"customer"`
	Totals   models.Totals     `json:"totals"`
}

// OrderService handles the order submission workflow.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	stock       StockPolicy
	publisher   OrderEventPublisher
	shippingFee float64
	validate    *validator.Validate
}

// NewOrderService creates a new OrderService. A nil publisher disables
// event publishing.
func NewOrderService(orderRepo repositories.OrderRepository, stock StockPolicy, publisher OrderEventPublisher, shippingFee float64) *OrderService {
	if stock == nil {
		stock = KeepStock{}
	}
	return &OrderService{
		orderRepo:   orderRepo,
		stock:       stock,
		publisher:   publisher,
		shippingFee: shippingFee,
		validate:    validator.New(),
	}
}

// PlaceOrder validates the submission, recomputes the authoritative
// totals, and persists the order header and items atomically. The
// client-submitted totals are never trusted; pricing is recomputed from
// the lines here.
func (s *OrderService) PlaceOrder(req PlaceOrderRequest) (*OrderConfirmation, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	totals := ComputeTotals(req.Items, s.shippingFee)

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Qty:       line.Qty,
		})
	}

	order := models.Order{
		CustomerName:    req.Customer.FullName,
		CustomerEmail:   req.Customer.Email,
		Total:           totals.GrandTotal,
		PaymentIntentID: newPaymentReference(),
	}
	order.Items = items

	err := s.orderRepo.Create(&order, func(r repositories.StockReserver) error {
		return s.stock.Reserve(r, order.Items)
	})
	if err != nil {
		return nil, err
	}

	s.publishPlaced(&order)

	return &OrderConfirmation{
		OrderID:  order.ID,
		Message:  "Order placed successfully",
		Items:    req.Items,
		Customer: *req.Customer,
		Totals:   totals,
	}, nil
}

// GetOrderByID retrieves a single order with its items.
func (s *OrderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// GetAllOrders retrieves all orders, newest first.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *OrderService) validateRequest(req PlaceOrderRequest) error {
	if req.Customer == nil {
		return apperrors.Validationf("missing field: customer")
	}
	if len(req.Items) == 0 {
		return apperrors.Validationf("missing field: items")
	}
	if err := s.validate.Struct(req.Customer); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			return apperrors.Validationf("invalid customer field %s", fieldErrs[0].Field())
		}
		return apperrors.Validationf("invalid customer: %v", err)
	}
	for _, line := range req.Items {
		if line.Qty < 1 {
			return apperrors.Validationf("item quantity must be positive for product %d", line.ProductID)
		}
		if line.Price < 0 {
			return apperrors.Validationf("item price must not be negative for product %d", line.ProductID)
		}
	}
	return nil
}

func (s *OrderService) publishPlaced(order *models.Order) {
	if s.publisher == nil {
		return
	}
	event := map[string]any{
		"orderID":        order.ID,
		"customer_email": order.CustomerEmail,
		"total":          order.Total,
		"payment_ref":    order.PaymentIntentID,
	}
	if err := s.publisher.PublishOrderPlaced(event); err != nil {
		log.Printf("Warning: failed to publish order placed event for order %d: %v", order.ID, err)
	}
}

// newPaymentReference synthesizes a payment reference until a real
// payment provider is integrated: a fixed prefix, the submission
// timestamp, and a short random suffix.
func newPaymentReference() string {
	return fmt.Sprintf("test-payment-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

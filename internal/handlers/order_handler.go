package handlers

import (
	"log"

	"dailydose/internal/apperrors"
	"dailydose/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles the checkout submission and confirmation reads.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/orders", h.HandlePlaceOrder)
	router.Get("/orders/:id", h.HandleGetOrderByID)
}

// HandlePlaceOrder takes the cart snapshot plus customer info and runs
// the submission workflow.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var req services.PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return jsonError(c, apperrors.Validationf("invalid request body"))
	}

	confirmation, err := h.service.PlaceOrder(req)
	if err != nil {
		log.Printf("Error placing order: %v", err)
		return jsonError(c, err)
	}
	return c.JSON(confirmation)
}

// HandleGetOrderByID returns one order with its items, or 404.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return jsonError(c, err)
	}
	order, err := h.service.GetOrderByID(id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(order)
}

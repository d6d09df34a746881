package handlers

import (
	"log"

	"dailydose/internal/apperrors"
	"dailydose/internal/models"
	"dailydose/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles admin login, the dashboard reports and the
// product mutations behind the admin gate.
type AdminHandler struct {
	authService    *services.AuthService
	catalogService *services.CatalogService
	reportService  *services.ReportService
	orderService   *services.OrderService
	validate       *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(authService *services.AuthService, catalogService *services.CatalogService, reportService *services.ReportService, orderService *services.OrderService) *AdminHandler {
	return &AdminHandler{
		authService:    authService,
		catalogService: catalogService,
		reportService:  reportService,
		orderService:   orderService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the admin routes. Login stays outside the
// gate; everything else requires an admin token.
func (h *AdminHandler) RegisterRoutes(router fiber.Router, gate fiber.Handler) {
	admin := router.Group("/admin")
	admin.Post("/login", h.HandleLogin)

	protected := admin.Group("", gate)
	protected.Get("/orders", h.HandleOrdersReport)
	protected.Get("/orders/:id", h.HandleGetOrderByID)
	protected.Get("/products", h.HandleProductsReport)
	protected.Post("/products", h.HandleCreateProduct)
	protected.Put("/products/:id", h.HandleUpdateProduct)
	protected.Delete("/products/:id", h.HandleDeleteProduct)
	protected.Post("/products/:id/stock", h.HandleUpdateStock)
}

// HandleLogin checks the admin credential and issues an admin token.
func (h *AdminHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing admin login request body: %v", err)
		return jsonError(c, apperrors.Validationf("invalid request body"))
	}

	token, err := h.authService.LoginAdmin(req.Username, req.Password)
	if err != nil {
		log.Printf("Admin login failed for %s: %v", req.Username, err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}

// HandleOrdersReport returns the order dashboard aggregates.
func (h *AdminHandler) HandleOrdersReport(c *fiber.Ctx) error {
	report, err := h.reportService.OrdersReport()
	if err != nil {
		log.Printf("Error building orders report: %v", err)
		return jsonError(c, err)
	}
	return c.JSON(report)
}

// HandleGetOrderByID returns one order with its items for the detail view.
func (h *AdminHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return jsonError(c, err)
	}
	order, err := h.orderService.GetOrderByID(id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(order)
}

// HandleProductsReport returns the product dashboard aggregates.
func (h *AdminHandler) HandleProductsReport(c *fiber.Ctx) error {
	report, err := h.reportService.ProductsReport()
	if err != nil {
		log.Printf("Error building products report: %v", err)
		return jsonError(c, err)
	}
	return c.JSON(report)
}

// HandleCreateProduct creates a catalog product.
func (h *AdminHandler) HandleCreateProduct(c *fiber.Ctx) error {
	product, err := h.parseProduct(c)
	if err != nil {
		return jsonError(c, err)
	}
	if err := h.catalogService.CreateProduct(product); err != nil {
		log.Printf("Error creating product: %v", err)
		return jsonError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates a catalog product.
func (h *AdminHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return jsonError(c, err)
	}
	product, err := h.parseProduct(c)
	if err != nil {
		return jsonError(c, err)
	}
	product.ID = id
	if err := h.catalogService.UpdateProduct(product); err != nil {
		log.Printf("Error updating product %d: %v", id, err)
		return jsonError(c, err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a catalog product.
func (h *AdminHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return jsonError(c, err)
	}
	if err := h.catalogService.DeleteProduct(id); err != nil {
		log.Printf("Error deleting product %d: %v", id, err)
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleUpdateStock sets a product's stock level.
func (h *AdminHandler) HandleUpdateStock(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return jsonError(c, err)
	}

	var body struct {
		Stock *int `json:"stock"`
	}
	if err := c.BodyParser(&body); err != nil || body.Stock == nil {
		return jsonError(c, apperrors.Validationf("missing field: stock"))
	}
	if *body.Stock < 0 {
		return jsonError(c, apperrors.Validationf("stock must not be negative"))
	}

	if err := h.catalogService.UpdateProductStock(id, *body.Stock); err != nil {
		log.Printf("Error updating stock for product %d: %v", id, err)
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *AdminHandler) parseProduct(c *fiber.Ctx) (*models.Product, error) {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return nil, apperrors.Validationf("invalid request body")
	}
	if err := h.validate.Struct(product); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			return nil, apperrors.Validationf("invalid product field %s", fieldErrs[0].Field())
		}
		return nil, apperrors.Validationf("invalid product: %v", err)
	}
	return &product, nil
}

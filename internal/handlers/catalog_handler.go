package handlers

import (
	"log"

	"dailydose/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles the public catalog reads.
type CatalogHandler struct {
	service *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleGetProducts)
	router.Get("/products/:id", h.HandleGetProductByID)
	router.Get("/styles", h.HandleGetStyles)
	router.Get("/styles/:id", h.HandleGetStyleByID)
	router.Get("/articles", h.HandleGetArticles)
	router.Get("/articles/:id", h.HandleGetArticleByID)
}

// HandleGetProducts returns the full product catalog.
func (h *CatalogHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return jsonError(c, err)
	}
	return c.JSON(products)
}

// HandleGetProductByID returns one product or 404.
func (h *CatalogHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return jsonError(c, err)
	}
	product, err := h.service.GetProductByID(id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(product)
}

// HandleGetStyles returns all styles with list fields decoded.
func (h *CatalogHandler) HandleGetStyles(c *fiber.Ctx) error {
	styles, err := h.service.GetAllStyles()
	if err != nil {
		log.Printf("Error getting all styles: %v", err)
		return jsonError(c, err)
	}
	return c.JSON(styles)
}

// HandleGetStyleByID returns one style or 404.
func (h *CatalogHandler) HandleGetStyleByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return jsonError(c, err)
	}
	style, err := h.service.GetStyleByID(id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(style)
}

// HandleGetArticles returns all articles, newest first.
func (h *CatalogHandler) HandleGetArticles(c *fiber.Ctx) error {
	articles, err := h.service.GetAllArticles()
	if err != nil {
		log.Printf("Error getting all articles: %v", err)
		return jsonError(c, err)
	}
	return c.JSON(articles)
}

// HandleGetArticleByID returns one article or 404.
func (h *CatalogHandler) HandleGetArticleByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return jsonError(c, err)
	}
	article, err := h.service.GetArticleByID(id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(article)
}

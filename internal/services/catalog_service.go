package services

import (
	"dailydose/internal/models"
	"dailydose/internal/repositories"
)

// CatalogService exposes the read side of the catalog (products, styles,
// articles) plus the admin product mutations.
type CatalogService struct {
	products repositories.ProductRepository
	styles   repositories.StyleRepository
	articles repositories.ArticleRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(products repositories.ProductRepository, styles repositories.StyleRepository, articles repositories.ArticleRepository) *CatalogService {
	return &CatalogService{
		products: products,
		styles:   styles,
		articles: articles,
	}
}

// GetAllProducts retrieves all products.
func (s *CatalogService) GetAllProducts() ([]models.Product, error) {
	return s.products.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *CatalogService) GetProductByID(id uint) (*models.Product, error) {
	return s.products.GetByID(id)
}

// GetAllStyles retrieves all styles with list fields decoded.
func (s *CatalogService) GetAllStyles() ([]models.Style, error) {
	return s.styles.GetAll()
}

// GetStyleByID retrieves a single style by its ID.
func (s *CatalogService) GetStyleByID(id uint) (*models.Style, error) {
	return s.styles.GetByID(id)
}

// GetAllArticles retrieves all articles, newest first.
func (s *CatalogService) GetAllArticles() ([]models.Article, error) {
	return s.articles.GetAll()
}

// GetArticleByID retrieves a single article by its ID.
func (s *CatalogService) GetArticleByID(id uint) (*models.Article, error) {
	return s.articles.GetByID(id)
}

// CreateProduct creates a new product.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	return s.products.Create(product)
}

// UpdateProduct updates an existing product.
func (s *CatalogService) UpdateProduct(product *models.Product) error {
	return s.products.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *CatalogService) DeleteProduct(id uint) error {
	return s.products.Delete(id)
}

// UpdateProductStock sets a product's stock level.
func (s *CatalogService) UpdateProductStock(id uint, stock int) error {
	return s.products.UpdateStock(id, stock)
}

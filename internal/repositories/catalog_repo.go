package repositories

import (
	"dailydose/internal/models"
)

// StyleRepository defines the interface for style content access.
type StyleRepository interface {
	GetAll() ([]models.Style, error)
	GetByID(id uint) (*models.Style, error)
	Create(style *models.Style) error
}

// ArticleRepository defines the interface for article content access.
// GetAll returns articles newest first.
type ArticleRepository interface {
	GetAll() ([]models.Article, error)
	GetByID(id uint) (*models.Article, error)
	Create(article *models.Article) error
}

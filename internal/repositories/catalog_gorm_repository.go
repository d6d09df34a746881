package repositories

import (
	"errors"

	"dailydose/internal/apperrors"
	"dailydose/internal/models"

	"gorm.io/gorm"
)

// GORMStyleRepository is a GORM implementation of StyleRepository.
type GORMStyleRepository struct {
	db *gorm.DB
}

// NewGORMStyleRepository creates a new instance of GORMStyleRepository.
func NewGORMStyleRepository(db *gorm.DB) *GORMStyleRepository {
	return &GORMStyleRepository{
		db: db,
	}
}

// GetAll retrieves all styles. List-valued columns are decoded by the
// StringList scanner on the way out.
func (r *GORMStyleRepository) GetAll() ([]models.Style, error) {
	var styles []models.Style
	if err := r.db.Find(&styles).Error; err != nil {
		return nil, apperrors.Persistencef("failed to get all styles: %v", err)
	}
	return styles, nil
}

// GetByID retrieves a single style by its ID.
func (r *GORMStyleRepository) GetByID(id uint) (*models.Style, error) {
	var style models.Style
	if err := r.db.First(&style, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("style with ID %d not found", id)
		}
		return nil, apperrors.Persistencef("failed to get style %d: %v", id, err)
	}
	return &style, nil
}

// Create creates a new style, used by seeding.
func (r *GORMStyleRepository) Create(style *models.Style) error {
	if err := r.db.Create(style).Error; err != nil {
		return apperrors.Persistencef("failed to create style: %v", err)
	}
	return nil
}

// GORMArticleRepository is a GORM implementation of ArticleRepository.
type GORMArticleRepository struct {
	db *gorm.DB
}

// NewGORMArticleRepository creates a new instance of GORMArticleRepository.
func NewGORMArticleRepository(db *gorm.DB) *GORMArticleRepository {
	return &GORMArticleRepository{
		db: db,
	}
}

// GetAll retrieves all articles, newest first.
func (r *GORMArticleRepository) GetAll() ([]models.Article, error) {
	var articles []models.Article
	if err := r.db.Order("date DESC").Find(&articles).Error; err != nil {
		return nil, apperrors.Persistencef("failed to get all articles: %v", err)
	}
	return articles, nil
}

// GetByID retrieves a single article by its ID.
func (r *GORMArticleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.First(&article, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("article with ID %d not found", id)
		}
		return nil, apperrors.Persistencef("failed to get article %d: %v", id, err)
	}
	return &article, nil
}

// Create creates a new article, used by seeding.
func (r *GORMArticleRepository) Create(article *models.Article) error {
	if err := r.db.Create(article).Error; err != nil {
		return apperrors.Persistencef("failed to create article: %v", err)
	}
	return nil
}

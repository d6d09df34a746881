package repositories

import (
	"sort"
	"sync"

	"dailydose/internal/apperrors"
	"dailydose/internal/models"
)

// MockStyleRepository is an in-memory implementation of StyleRepository.
type MockStyleRepository struct {
	styles map[uint]models.Style
	nextID uint
	mu     sync.RWMutex
}

// NewMockStyleRepository creates a new instance of MockStyleRepository.
func NewMockStyleRepository() *MockStyleRepository {
	return &MockStyleRepository{
		styles: make(map[uint]models.Style),
		nextID: 1,
	}
}

// GetAll returns all styles ordered by ID.
func (r *MockStyleRepository) GetAll() ([]models.Style, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	styleList := make([]models.Style, 0, len(r.styles))
	for _, s := range r.styles {
		styleList = append(styleList, s)
	}
	sort.Slice(styleList, func(i, j int) bool { return styleList[i].ID < styleList[j].ID })
	return styleList, nil
}

// GetByID returns a style by its ID.
func (r *MockStyleRepository) GetByID(id uint) (*models.Style, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	style, ok := r.styles[id]
	if !ok {
		return nil, apperrors.NotFoundf("style with ID %d not found", id)
	}
	return &style, nil
}

// Create adds a new style.
func (r *MockStyleRepository) Create(style *models.Style) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if style.ID == 0 {
		style.ID = r.nextID
	}
	if style.ID >= r.nextID {
		r.nextID = style.ID + 1
	}
	r.styles[style.ID] = *style
	return nil
}

// MockArticleRepository is an in-memory implementation of ArticleRepository.
type MockArticleRepository struct {
	articles map[uint]models.Article
	nextID   uint
	mu       sync.RWMutex
}

// NewMockArticleRepository creates a new instance of MockArticleRepository.
func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		articles: make(map[uint]models.Article),
		nextID:   1,
	}
}

// GetAll returns all articles, newest first.
func (r *MockArticleRepository) GetAll() ([]models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	articleList := make([]models.Article, 0, len(r.articles))
	for _, a := range r.articles {
		articleList = append(articleList, a)
	}
	sort.Slice(articleList, func(i, j int) bool {
		return articleList[i].Date.After(articleList[j].Date)
	})
	return articleList, nil
}

// GetByID returns an article by its ID.
func (r *MockArticleRepository) GetByID(id uint) (*models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	article, ok := r.articles[id]
	if !ok {
		return nil, apperrors.NotFoundf("article with ID %d not found", id)
	}
	return &article, nil
}

// Create adds a new article.
func (r *MockArticleRepository) Create(article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if article.ID == 0 {
		article.ID = r.nextID
	}
	if article.ID >= r.nextID {
		r.nextID = article.ID + 1
	}
	r.articles[article.ID] = *article
	return nil
}

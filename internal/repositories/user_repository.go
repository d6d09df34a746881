package repositories

import (
	"dailydose/internal/models"
)

// UserRepository defines the interface for customer account access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
}

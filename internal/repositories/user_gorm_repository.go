package repositories

import (
	"errors"

	"dailydose/internal/apperrors"
	"dailydose/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create creates a new user account.
func (r *GORMUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Duplicatef("user with username %q or email %q already exists", user.Username, user.Email)
		}
		return apperrors.Persistencef("failed to create user: %v", err)
	}
	return nil
}

// GetByUsername retrieves a user by username.
func (r *GORMUserRepository) GetByUsername(username string) (*models.User, error) {
	return r.getOne("username = ?", username)
}

// GetByEmail retrieves a user by email.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	return r.getOne("email = ?", email)
}

// GetByID retrieves a user by ID.
func (r *GORMUserRepository) GetByID(id uint) (*models.User, error) {
	return r.getOne("id = ?", id)
}

func (r *GORMUserRepository) getOne(query string, arg any) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("user not found")
		}
		return nil, apperrors.Persistencef("failed to get user: %v", err)
	}
	return &user, nil
}

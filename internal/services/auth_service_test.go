package services_test

import (
	"testing"
	"time"

	"dailydose/internal/apperrors"
	"dailydose/internal/models"
	"dailydose/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a testify mock of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

const testJWTSecret = "test_jwt_secret"

func newAuthService(repo *MockUserRepository) *services.AuthService {
	checker := services.StaticCredentialChecker{Username: "admin", Password: "admin123"}
	return services.NewAuthService(repo, checker, testJWTSecret)
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	user := &models.User{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	}

	mockRepo.On("GetByUsername", user.Username).Return(nil, apperrors.NotFoundf("user not found")).Once()
	mockRepo.On("GetByEmail", user.Email).Return(nil, apperrors.NotFoundf("user not found")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	assert.NoError(t, authService.RegisterUser(user))
	// The stored password is a bcrypt hash, not the plaintext
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)

	// Username already taken
	mockRepo.On("GetByUsername", user.Username).Return(&models.User{ID: 1}, nil).Once()
	err := authService.RegisterUser(&models.User{Username: "testuser", Email: "other@example.com", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	mockRepo.AssertExpectations(t)

	// Email already registered
	mockRepo.On("GetByUsername", "otheruser").Return(nil, apperrors.NotFoundf("user not found")).Once()
	mockRepo.On("GetByEmail", user.Email).Return(&models.User{ID: 1}, nil).Once()
	err = authService.RegisterUser(&models.User{Username: "otheruser", Email: user.Email, Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       123,
		Username: "testuser",
		Email:    "test@example.com",
		Password: string(hashed),
	}

	// Successful login returns a token carrying the user claims
	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()
	token, err := authService.LoginUser("testuser", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "testuser", claims["username"])
	assert.False(t, services.IsAdmin(claims))
	mockRepo.AssertExpectations(t)

	// Wrong password
	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()
	_, err = authService.LoginUser("testuser", "wrongpassword")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")

	// Unknown user gets the same generic error
	mockRepo.On("GetByUsername", "ghost").Return(nil, apperrors.NotFoundf("user not found")).Once()
	_, err = authService.LoginUser("ghost", "password123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginAdmin(t *testing.T) {
	authService := newAuthService(new(MockUserRepository))

	token, err := authService.LoginAdmin("admin", "admin123")
	assert.NoError(t, err)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.True(t, services.IsAdmin(claims))
	assert.Equal(t, "admin", claims["username"])

	_, err = authService.LoginAdmin("admin", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = authService.LoginAdmin("root", "admin123")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAuthService_ValidateToken(t *testing.T) {
	authService := newAuthService(new(MockUserRepository))

	// Garbage token
	_, err := authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)

	// Token signed with a different secret
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "testuser",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	foreignString, _ := foreign.SignedString([]byte("other-secret"))
	_, err = authService.ValidateToken(foreignString)
	assert.Error(t, err)

	// Expired token
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "testuser",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})
	expiredString, _ := expired.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredString)
	assert.Error(t, err)
}

func TestStaticCredentialChecker(t *testing.T) {
	checker := services.StaticCredentialChecker{Username: "admin", Password: "admin123"}
	assert.True(t, checker.Check("admin", "admin123"))
	assert.False(t, checker.Check("admin", "nope"))
	assert.False(t, checker.Check("", ""))
}

package services

import (
	"crypto/subtle"
	"log"
	"time"

	"dailydose/internal/apperrors"
	"dailydose/internal/models"
	"dailydose/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// CredentialChecker verifies an admin username/password pair. The
// strategy is pluggable so the route logic never changes when the
// credential source does.
type CredentialChecker interface {
	Check(username, password string) bool
}

// StaticCredentialChecker accepts one fixed credential pair from
// configuration.
type StaticCredentialChecker struct {
	Username string
	Password string
}

// Check compares both fields in constant time.
func (c StaticCredentialChecker) Check(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
	return userOK && passOK
}

// AuthService handles customer accounts and the admin gate.
type AuthService struct {
	userRepo   repositories.UserRepository
	admin      CredentialChecker
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, admin CredentialChecker, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		admin:      admin,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// RegisterUser registers a new customer account with a hashed password.
func (s *AuthService) RegisterUser(user *models.User) error {
	if s.userRepo == nil {
		return apperrors.Persistencef("user store is not configured")
	}
	if existing, err := s.userRepo.GetByUsername(user.Username); err == nil && existing != nil {
		return apperrors.Duplicatef("username %q already taken", user.Username)
	}
	if existing, err := s.userRepo.GetByEmail(user.Email); err == nil && existing != nil {
		return apperrors.Duplicatef("email %q already registered", user.Email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Persistencef("failed to hash password: %v", err)
	}
	user.Password = string(hashed)

	return s.userRepo.Create(user)
}

// LoginUser authenticates a customer and returns a JWT on success.
func (s *AuthService) LoginUser(username, password string) (string, error) {
	if s.userRepo == nil {
		return "", apperrors.Persistencef("user store is not configured")
	}
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		// Do not reveal whether the username exists.
		return "", apperrors.Validationf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperrors.Validationf("invalid credentials")
	}
	return s.issueToken(jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
	})
}

// LoginAdmin checks the admin credential and returns an admin-scoped
// JWT on success.
func (s *AuthService) LoginAdmin(username, password string) (string, error) {
	if s.admin == nil || !s.admin.Check(username, password) {
		return "", apperrors.Validationf("invalid credentials")
	}
	return s.issueToken(jwt.MapClaims{
		"username": username,
		"admin":    true,
	})
}

// ValidateToken parses and validates a JWT, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.Validationf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, apperrors.Validationf("invalid token")
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, apperrors.Validationf("invalid token")
}

// IsAdmin reports whether the claims carry the admin scope.
func IsAdmin(claims jwt.MapClaims) bool {
	admin, ok := claims["admin"].(bool)
	return ok && admin
}

func (s *AuthService) issueToken(claims jwt.MapClaims) (string, error) {
	now := time.Now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.tokenDurat).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", apperrors.Persistencef("failed to sign token: %v", err)
	}
	return signed, nil
}

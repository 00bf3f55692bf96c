package services

import (
	"errors"

	"github.com/atelierhq/atelier/app/models"
	"github.com/atelierhq/atelier/app/repositories"
	"github.com/atelierhq/atelier/pkg/auth"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for a wrong email or password.
// Both cases share one error so the response leaks nothing about
// which accounts exist.
var ErrInvalidCredentials = errors.New("invalid email or password")

// LoginInput is the accepted shape for both login endpoints.
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthService checks credentials for the back office and the JSON API.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// Login verifies an email/password pair and returns the account.
func (s *AuthService) Login(in LoginInput) (models.User, error) {
	user, err := s.users.FindByEmail(in.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}

	if !auth.CheckPassword(user.Password, in.Password) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// LoginToken verifies credentials and issues a JWT for API clients.
func (s *AuthService) LoginToken(in LoginInput) (string, error) {
	user, err := s.Login(in)
	if err != nil {
		return "", err
	}
	return auth.GenerateToken(user.ID, user.Role)
}

// Register creates an account with a hashed password.
func (s *AuthService) Register(name, email, password string) (models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{Name: name, Email: email, Password: hash, Role: "customer"}
	if err := s.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

package services

import (
	"errors"
	"fmt"

	"formhub/internal/models"
	"formhub/internal/repositories"
	"formhub/pkg/password"
)

var (
	// ErrUserNotFound is returned by Login when no account matches the email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidPassword is returned by Login on a failed password check.
	ErrInvalidPassword = errors.New("invalid password")
)

// AuthService handles business logic for signup and login.
type AuthService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Signup hashes the password and inserts a new user. Email uniqueness
// is enforced by the storage layer only; a duplicate surfaces as
// repositories.ErrDuplicate. The returned user is re-fetched so the
// userType column default is populated.
func (s *AuthService) Signup(name, email, plainPassword string) (*models.User, error) {
	hashed, err := password.Hash(plainPassword)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	created, err := s.userRepo.GetByID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created user: %w", err)
	}
	return created, nil
}

// Login looks the account up by email and verifies the password. On
// success it returns the stored user; no session or token is issued.
func (s *AuthService) Login(email, plainPassword string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !password.Verify(plainPassword, user.Password) {
		return nil, ErrInvalidPassword
	}
	return user, nil
}

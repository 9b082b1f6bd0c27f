package services_test

import (
	"fmt"
	"testing"

	"formhub/internal/models"
	"formhub/internal/repositories"
	"formhub/internal/services"
	"formhub/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
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

func TestAuthService_Signup(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo)

	var stored *models.User
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			stored = args.Get(0).(*models.User)
			stored.ID = 1
		}).
		Return(nil).Once()
	mockRepo.On("GetByID", uint(1)).Return(&models.User{
		ID:       1,
		Name:     "Alice",
		Email:    "alice@example.com",
		UserType: "Regular",
	}, nil).Once()

	created, err := authService.Signup("Alice", "alice@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "Regular", created.UserType)

	// The stored password is a verifying hash, never the plaintext.
	assert.NotEqual(t, "password123", stored.Password)
	assert.True(t, password.Verify("password123", stored.Password))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_SignupDuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo)

	dupErr := fmt.Errorf("email alice@example.com: %w", repositories.ErrDuplicate)
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(dupErr).Once()

	_, err := authService.Signup("Alice", "alice@example.com", "password123")
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo)

	hashed, _ := password.Hash("password123")
	user := &models.User{
		ID:       7,
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: hashed,
		UserType: "Regular",
	}

	// Successful login echoes the stored identity.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	got, err := authService.Login("alice@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Name, got.Name)
	assert.Equal(t, user.UserType, got.UserType)

	// Wrong password
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, err = authService.Login("alice@example.com", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidPassword)

	// Unknown email
	notFound := fmt.Errorf("user with email ghost@example.com: %w", repositories.ErrNotFound)
	mockRepo.On("GetByEmail", "ghost@example.com").Return(nil, notFound).Once()
	_, err = authService.Login("ghost@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	mockRepo.AssertExpectations(t)
}

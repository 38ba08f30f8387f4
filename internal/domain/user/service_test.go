package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, username, passwordHash string) (User, error) {
	args := m.Called(ctx, username, passwordHash)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id int) (User, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Bool(1), args.Error(2)
}

func (m *MockRepository) FindByUsername(ctx context.Context, username string) (User, bool, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(User), args.Bool(1), args.Error(2)
}

func TestService_Create(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	password := "secret123"
	var storedHash string
	mockRepo.On("Create", mock.Anything, "worship.lead", mock.MatchedBy(func(hash string) bool {
		storedHash = hash
		return hash != "" && hash != password
	})).Return(User{ID: 1, Username: "worship.lead"}, nil)

	u, err := service.Create(context.Background(), CreateInput{Username: " worship.lead ", Password: password})
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)))

	mockRepo.AssertExpectations(t)
}

func TestService_Create_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Create", mock.Anything, "testuser", mock.AnythingOfType("string")).Return(User{}, ErrUsernameTaken)

	_, err := service.Create(context.Background(), CreateInput{Username: "testuser", Password: "pass1234"})
	assert.True(t, errors.Is(err, ErrUsernameTaken))

	mockRepo.AssertExpectations(t)
}

func TestService_Create_Invalid(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	_, err := service.Create(context.Background(), CreateInput{Username: "ab", Password: "pass1234"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.EqualError(t, err, "username must be at least 3 characters")

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_GetByUsername(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("FindByUsername", mock.Anything, "usher").Return(User{ID: 4, Username: "usher"}, true, nil)
	mockRepo.On("Get", mock.Anything, 5).Return(User{}, false, nil)

	u, ok, err := service.GetByUsername(context.Background(), "  usher ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, u.ID)

	_, ok, err = service.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, ok)

	mockRepo.AssertExpectations(t)
}

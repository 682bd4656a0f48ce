package auth_test

import (
	"time"

	"github.com/Sadman-26/Metro-Rail-Project/internal/models"
	"github.com/Sadman-26/Metro-Rail-Project/internal/storage"

	"github.com/stretchr/testify/mock"
)

// MockStorage implements the subset of storage.Storage the auth
// service touches; the embedded interface panics on anything else.
type MockStorage struct {
	mock.Mock
	storage.Storage
}

func (m *MockStorage) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockStorage) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) GetUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) StoreSession(jti string, userID uint, ttl time.Duration) error {
	args := m.Called(jti, userID, ttl)
	return args.Error(0)
}

func (m *MockStorage) GetSessionUserID(jti string) (uint, bool, error) {
	args := m.Called(jti)
	return args.Get(0).(uint), args.Bool(1), args.Error(2)
}

func (m *MockStorage) DeleteSession(jti string) error {
	args := m.Called(jti)
	return args.Error(0)
}

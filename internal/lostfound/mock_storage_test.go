package lostfound_test

import (
	"github.com/Sadman-26/Metro-Rail-Project/internal/models"
	"github.com/Sadman-26/Metro-Rail-Project/internal/storage"

	"github.com/stretchr/testify/mock"
)

// MockStorage implements the subset of storage.Storage the lost &
// found service touches; the embedded interface panics on anything
// else, which would mean the service grew an unexpected dependency.
type MockStorage struct {
	mock.Mock
	storage.Storage
}

func (m *MockStorage) CreateLostItem(item *models.LostItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockStorage) ListLostItems() ([]models.LostItem, error) {
	args := m.Called()
	return args.Get(0).([]models.LostItem), args.Error(1)
}

func (m *MockStorage) GetLostItemByID(id uint) (*models.LostItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LostItem), args.Error(1)
}

func (m *MockStorage) SaveLostItem(item *models.LostItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockStorage) DeleteLostItem(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

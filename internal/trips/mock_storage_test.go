package trips_test

import (
	"github.com/Sadman-26/Metro-Rail-Project/internal/models"
	"github.com/Sadman-26/Metro-Rail-Project/internal/storage"

	"github.com/stretchr/testify/mock"
)

// MockStorage implements the subset of storage.Storage the trips
// service touches; the embedded interface panics on anything else.
type MockStorage struct {
	mock.Mock
	storage.Storage
}

func (m *MockStorage) CreateJourney(journey *models.Journey) error {
	args := m.Called(journey)
	return args.Error(0)
}

func (m *MockStorage) ListJourneys(ownerID uint) ([]models.Journey, error) {
	args := m.Called(ownerID)
	return args.Get(0).([]models.Journey), args.Error(1)
}

func (m *MockStorage) GetJourneyByID(id uint) (*models.Journey, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Journey), args.Error(1)
}

func (m *MockStorage) SaveJourney(journey *models.Journey) error {
	args := m.Called(journey)
	return args.Error(0)
}

func (m *MockStorage) DeleteJourney(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStorage) CreatePayment(payment *models.Payment) error {
	args := m.Called(payment)
	return args.Error(0)
}

func (m *MockStorage) ListPayments(ownerID uint) ([]models.Payment, error) {
	args := m.Called(ownerID)
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockStorage) GetPaymentByID(id uint) (*models.Payment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockStorage) DeletePayment(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

package records_test

import (
	"github.com/Sadman-26/Metro-Rail-Project/internal/models"
	"github.com/Sadman-26/Metro-Rail-Project/internal/storage"

	"github.com/stretchr/testify/mock"
)

// MockStorage implements the subset of storage.Storage the records
// service touches; the embedded interface panics on anything else.
type MockStorage struct {
	mock.Mock
	storage.Storage
}

func (m *MockStorage) CreateLostReport(report *models.UserLostReport) error {
	args := m.Called(report)
	return args.Error(0)
}

func (m *MockStorage) ListLostReports(ownerID *uint) ([]models.UserLostReport, error) {
	args := m.Called(ownerID)
	return args.Get(0).([]models.UserLostReport), args.Error(1)
}

func (m *MockStorage) GetLostReportByID(id uint) (*models.UserLostReport, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserLostReport), args.Error(1)
}

func (m *MockStorage) DeleteLostReport(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStorage) CreateFeedback(fb *models.Feedback) error {
	args := m.Called(fb)
	return args.Error(0)
}

func (m *MockStorage) ListFeedback(ownerID *uint) ([]models.Feedback, error) {
	args := m.Called(ownerID)
	return args.Get(0).([]models.Feedback), args.Error(1)
}

func (m *MockStorage) GetFeedbackByID(id uint) (*models.Feedback, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Feedback), args.Error(1)
}

func (m *MockStorage) DeleteFeedback(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStorage) CreateComplaint(complaint *models.Complaint) error {
	args := m.Called(complaint)
	return args.Error(0)
}

func (m *MockStorage) ListComplaints(ownerID *uint) ([]models.Complaint, error) {
	args := m.Called(ownerID)
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) GetComplaintByID(id uint) (*models.Complaint, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockStorage) SaveComplaint(complaint *models.Complaint) error {
	args := m.Called(complaint)
	return args.Error(0)
}

func (m *MockStorage) DeleteComplaint(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

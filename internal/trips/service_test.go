package trips_test

import (
	"testing"
	"time"

	"github.com/Sadman-26/Metro-Rail-Project/internal/apperr"
	"github.com/Sadman-26/Metro-Rail-Project/internal/models"
	"github.com/Sadman-26/Metro-Rail-Project/internal/trips"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func userWithID(id uint, admin bool) *models.User {
	return &models.User{
		Model:    gorm.Model{ID: id},
		Name:     "Rider",
		Username: "rider",
		Email:    "rider@example.com",
		IsAdmin:  admin,
	}
}

// Journeys and payments are owner-scoped even for admins; the list
// call must always carry the caller's own id.
func TestListJourneys_AdminGetsNoOverride(t *testing.T) {
	storageMock := new(MockStorage)
	storageMock.On("ListJourneys", uint(12)).Return([]models.Journey{}, nil)
	svc := trips.NewService(storageMock)

	_, err := svc.ListJourneys(userWithID(12, true))

	assert.NoError(t, err)
	storageMock.AssertCalled(t, "ListJourneys", uint(12))
}

func TestListPayments_AdminGetsNoOverride(t *testing.T) {
	storageMock := new(MockStorage)
	storageMock.On("ListPayments", uint(12)).Return([]models.Payment{}, nil)
	svc := trips.NewService(storageMock)

	_, err := svc.ListPayments(userWithID(12, true))

	assert.NoError(t, err)
	storageMock.AssertCalled(t, "ListPayments", uint(12))
}

func TestGetJourney_ForeignRowHiddenEvenFromAdmin(t *testing.T) {
	storageMock := new(MockStorage)
	storageMock.On("GetJourneyByID", uint(3)).Return(&models.Journey{
		Model: gorm.Model{ID: 3}, UserID: 1, Route: "Agargaon to Motijheel",
	}, nil)
	svc := trips.NewService(storageMock)

	_, err := svc.GetJourney(3, userWithID(2, true))

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCreateJourney_OwnerIsAlwaysCaller(t *testing.T) {
	storageMock := new(MockStorage)
	storageMock.On("CreateJourney", mock.AnythingOfType("*models.Journey")).Return(nil)
	svc := trips.NewService(storageMock)

	journey, err := svc.CreateJourney(userWithID(5, false), trips.JourneyInput{
		Route: "Uttara North to Motijheel",
		Date:  time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
		Fare:  100,
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(5), journey.UserID)
}

func TestCreateJourney_ValidatesRequiredFields(t *testing.T) {
	svc := trips.NewService(new(MockStorage))

	_, err := svc.CreateJourney(userWithID(5, false), trips.JourneyInput{})

	fields := apperr.FieldsOf(err)
	assert.Contains(t, fields, "route")
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "fare")
}

func TestCreateJourney_RejectsForeignPayment(t *testing.T) {
	storageMock := new(MockStorage)
	storageMock.On("GetPaymentByID", uint(30)).Return(&models.Payment{
		Model: gorm.Model{ID: 30}, UserID: 99,
	}, nil)
	svc := trips.NewService(storageMock)

	paymentID := uint(30)
	_, err := svc.CreateJourney(userWithID(5, false), trips.JourneyInput{
		Route:     "Agargaon to Motijheel",
		Date:      time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
		Fare:      60,
		PaymentID: &paymentID,
	})

	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Contains(t, apperr.FieldsOf(err), "payment")
}

func TestCreatePayment_RejectsUnknownMethod(t *testing.T) {
	svc := trips.NewService(new(MockStorage))

	_, err := svc.CreatePayment(userWithID(5, false), trips.PaymentInput{
		Method: "PayPal", Reference: "TXN1", Amount: 60,
	})

	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Contains(t, apperr.FieldsOf(err), "method")
}

func TestCreatePayment_AcceptsEveryListedMethod(t *testing.T) {
	storageMock := new(MockStorage)
	storageMock.On("CreatePayment", mock.AnythingOfType("*models.Payment")).Return(nil)
	svc := trips.NewService(storageMock)

	for _, method := range models.PaymentMethods {
		_, err := svc.CreatePayment(userWithID(5, false), trips.PaymentInput{
			Method: method, Reference: "TXN1", Amount: 60,
		})
		assert.NoError(t, err, method)
	}
}

func TestDeletePayment_OwnerOnly(t *testing.T) {
	storageMock := new(MockStorage)
	storageMock.On("GetPaymentByID", uint(7)).Return(&models.Payment{
		Model: gorm.Model{ID: 7}, UserID: 1,
	}, nil)
	svc := trips.NewService(storageMock)

	err := svc.DeletePayment(7, userWithID(2, true))

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	storageMock.AssertNotCalled(t, "DeletePayment", mock.Anything)
}

// Package trips implements journeys and fare payments. Both entity
// types are strictly owner-scoped: riders see only their own rows, and
// there is no admin override (config.AdminSeesAll keeps trip and
// payment records private even from admins).
package trips

import (
	"log"
	"strings"
	"time"

	"github.com/Sadman-26/Metro-Rail-Project/internal/apperr"
	"github.com/Sadman-26/Metro-Rail-Project/internal/models"
	"github.com/Sadman-26/Metro-Rail-Project/internal/storage"
)

// Service handles the business logic for journeys and payments.
type Service struct {
	Storage storage.Storage
}

// NewService creates a new trips service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

type JourneyInput struct {
	Route     string
	Date      time.Time
	Fare      float64
	PaymentID *uint
}

// JourneyUpdate is a partial update; nil fields are left untouched.
type JourneyUpdate struct {
	Route     *string
	Date      *time.Time
	Fare      *float64
	PaymentID *uint
}

type PaymentInput struct {
	Method    string
	Reference string
	Amount    float64
}

// ----- Journeys -----

func (s *Service) ListJourneys(caller *models.User) ([]models.Journey, error) {
	if caller == nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	journeys, err := s.Storage.ListJourneys(caller.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return journeys, nil
}

// GetJourney returns a journey owned by the caller. Rows owned by
// anyone else are reported as absent, admin or not.
func (s *Service) GetJourney(id uint, caller *models.User) (*models.Journey, error) {
	if caller == nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	journey, err := s.Storage.GetJourneyByID(id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if journey == nil || journey.UserID != caller.ID {
		return nil, apperr.NotFound("journey")
	}
	return journey, nil
}

func (s *Service) CreateJourney(caller *models.User, input JourneyInput) (*models.Journey, error) {
	if caller == nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	fields := map[string]string{}
	if strings.TrimSpace(input.Route) == "" {
		fields["route"] = "this field is required"
	}
	if input.Date.IsZero() {
		fields["date"] = "this field is required"
	}
	if input.Fare <= 0 {
		fields["fare"] = "must be a positive amount"
	}
	if len(fields) > 0 {
		log.Printf("INFO: Journey by user %d rejected: %v", caller.ID, fields)
		return nil, apperr.Validation(fields)
	}

	// A linked payment must exist and belong to the caller.
	if input.PaymentID != nil {
		payment, err := s.Storage.GetPaymentByID(*input.PaymentID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if payment == nil || payment.UserID != caller.ID {
			return nil, apperr.ValidationField("payment", "no such payment")
		}
	}

	journey := &models.Journey{
		UserID:    caller.ID,
		Route:     input.Route,
		Date:      input.Date,
		Fare:      input.Fare,
		PaymentID: input.PaymentID,
	}
	if err := s.Storage.CreateJourney(journey); err != nil {
		return nil, apperr.Internal(err)
	}
	log.Printf("INFO: Journey %d created by user %d", journey.ID, caller.ID)
	return journey, nil
}

func (s *Service) UpdateJourney(id uint, caller *models.User, input JourneyUpdate) (*models.Journey, error) {
	journey, err := s.GetJourney(id, caller)
	if err != nil {
		return nil, err
	}
	if input.PaymentID != nil {
		payment, perr := s.Storage.GetPaymentByID(*input.PaymentID)
		if perr != nil {
			return nil, apperr.Internal(perr)
		}
		if payment == nil || payment.UserID != caller.ID {
			return nil, apperr.ValidationField("payment", "no such payment")
		}
		journey.PaymentID = input.PaymentID
	}
	if input.Route != nil {
		journey.Route = *input.Route
	}
	if input.Date != nil {
		journey.Date = *input.Date
	}
	if input.Fare != nil {
		if *input.Fare <= 0 {
			return nil, apperr.ValidationField("fare", "must be a positive amount")
		}
		journey.Fare = *input.Fare
	}
	if err := s.Storage.SaveJourney(journey); err != nil {
		return nil, apperr.Internal(err)
	}
	log.Printf("INFO: Journey %d updated by user %d", journey.ID, caller.ID)
	return journey, nil
}

func (s *Service) DeleteJourney(id uint, caller *models.User) error {
	journey, err := s.GetJourney(id, caller)
	if err != nil {
		return err
	}
	if err := s.Storage.DeleteJourney(journey.ID); err != nil {
		return apperr.Internal(err)
	}
	log.Printf("INFO: Journey %d deleted by user %d", journey.ID, caller.ID)
	return nil
}

// ----- Payments -----

func (s *Service) ListPayments(caller *models.User) ([]models.Payment, error) {
	if caller == nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	payments, err := s.Storage.ListPayments(caller.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return payments, nil
}

func (s *Service) GetPayment(id uint, caller *models.User) (*models.Payment, error) {
	if caller == nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	payment, err := s.Storage.GetPaymentByID(id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if payment == nil || payment.UserID != caller.ID {
		return nil, apperr.NotFound("payment")
	}
	return payment, nil
}

func (s *Service) CreatePayment(caller *models.User, input PaymentInput) (*models.Payment, error) {
	if caller == nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	fields := map[string]string{}
	if input.Method == "" {
		fields["method"] = "this field is required"
	} else if !models.ValidPaymentMethod(input.Method) {
		fields["method"] = "must be one of: bKash, Nagad, Rocket, Card"
	}
	if strings.TrimSpace(input.Reference) == "" {
		fields["reference"] = "this field is required"
	}
	if input.Amount <= 0 {
		fields["amount"] = "must be a positive amount"
	}
	if len(fields) > 0 {
		log.Printf("INFO: Payment by user %d rejected: %v", caller.ID, fields)
		return nil, apperr.Validation(fields)
	}

	payment := &models.Payment{
		UserID:    caller.ID,
		Method:    input.Method,
		Reference: input.Reference,
		Amount:    input.Amount,
	}
	if err := s.Storage.CreatePayment(payment); err != nil {
		return nil, apperr.Internal(err)
	}
	log.Printf("INFO: Payment %d created by user %d", payment.ID, caller.ID)
	return payment, nil
}

// DeletePayment removes a caller-owned payment. Any journey linked to
// it keeps its row; the storage layer clears the reference.
func (s *Service) DeletePayment(id uint, caller *models.User) error {
	payment, err := s.GetPayment(id, caller)
	if err != nil {
		return err
	}
	if err := s.Storage.DeletePayment(payment.ID); err != nil {
		return apperr.Internal(err)
	}
	log.Printf("INFO: Payment %d deleted by user %d", payment.ID, caller.ID)
	return nil
}

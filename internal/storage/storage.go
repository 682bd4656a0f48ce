package storage

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Sadman-26/Metro-Rail-Project/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Storage is the persistence boundary used by every service. Getters
// return (nil, nil) when the row is absent; services translate that
// into a NotFound error.
type Storage interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	UpdateUser(user *models.User) error

	StoreSession(jti string, userID uint, ttl time.Duration) error
	GetSessionUserID(jti string) (uint, bool, error)
	DeleteSession(jti string) error

	CreateLostItem(item *models.LostItem) error
	ListLostItems() ([]models.LostItem, error)
	GetLostItemByID(id uint) (*models.LostItem, error)
	SaveLostItem(item *models.LostItem) error
	DeleteLostItem(id uint) error

	CreateLostReport(report *models.UserLostReport) error
	ListLostReports(ownerID *uint) ([]models.UserLostReport, error)
	GetLostReportByID(id uint) (*models.UserLostReport, error)
	SaveLostReport(report *models.UserLostReport) error
	DeleteLostReport(id uint) error

	CreateFeedback(fb *models.Feedback) error
	ListFeedback(ownerID *uint) ([]models.Feedback, error)
	GetFeedbackByID(id uint) (*models.Feedback, error)
	SaveFeedback(fb *models.Feedback) error
	DeleteFeedback(id uint) error

	CreateComplaint(complaint *models.Complaint) error
	ListComplaints(ownerID *uint) ([]models.Complaint, error)
	GetComplaintByID(id uint) (*models.Complaint, error)
	SaveComplaint(complaint *models.Complaint) error
	DeleteComplaint(id uint) error

	CreateJourney(journey *models.Journey) error
	ListJourneys(ownerID uint) ([]models.Journey, error)
	GetJourneyByID(id uint) (*models.Journey, error)
	SaveJourney(journey *models.Journey) error
	DeleteJourney(id uint) error

	CreatePayment(payment *models.Payment) error
	ListPayments(ownerID uint) ([]models.Payment, error)
	GetPaymentByID(id uint) (*models.Payment, error)
	DeletePayment(id uint) error
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// ----- Users -----

func (s *Service) CreateUser(user *models.User) error {
	if err := s.DB.Create(user).Error; err != nil {
		log.Printf("ERROR: Failed to create user %s: %v", user.Email, err)
		return err
	}
	return nil
}

func (s *Service) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) UpdateUser(user *models.User) error {
	return s.DB.Save(user).Error
}

// ----- Sessions (Redis) -----

func sessionKey(jti string) string { return "session:" + jti }

// StoreSession records an issued token's jti so it can be revoked on
// logout. The TTL matches the token's exp claim.
func (s *Service) StoreSession(jti string, userID uint, ttl time.Duration) error {
	return s.Redis.Set(s.Ctx, sessionKey(jti), userID, ttl).Err()
}

func (s *Service) GetSessionUserID(jti string) (uint, bool, error) {
	id, err := s.Redis.Get(s.Ctx, sessionKey(jti)).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return uint(id), true, nil
}

func (s *Service) DeleteSession(jti string) error {
	return s.Redis.Del(s.Ctx, sessionKey(jti)).Err()
}

// ----- Lost items -----

func (s *Service) CreateLostItem(item *models.LostItem) error {
	if item.Status == "" {
		item.Status = models.StatusUnclaimed
	}
	if err := s.DB.Create(item).Error; err != nil {
		log.Printf("ERROR: Failed to create lost item %q: %v", item.Title, err)
		return err
	}
	return nil
}

// ListLostItems returns every lost item, newest first, with the poster
// preloaded for display-name denormalization.
func (s *Service) ListLostItems() ([]models.LostItem, error) {
	var items []models.LostItem
	err := s.DB.Preload("PostedBy").Order("created_at desc").Find(&items).Error
	if err != nil {
		log.Printf("ERROR: Failed to list lost items: %v", err)
		return nil, err
	}
	return items, nil
}

func (s *Service) GetLostItemByID(id uint) (*models.LostItem, error) {
	var item models.LostItem
	err := s.DB.Preload("PostedBy").First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) SaveLostItem(item *models.LostItem) error {
	return s.DB.Save(item).Error
}

func (s *Service) DeleteLostItem(id uint) error {
	return s.DB.Delete(&models.LostItem{}, id).Error
}

// ----- Lost reports -----

func (s *Service) CreateLostReport(report *models.UserLostReport) error {
	if err := s.DB.Create(report).Error; err != nil {
		log.Printf("ERROR: Failed to create lost report for user %d: %v", report.UserID, err)
		return err
	}
	return nil
}

func (s *Service) ListLostReports(ownerID *uint) ([]models.UserLostReport, error) {
	var reports []models.UserLostReport
	q := s.DB.Preload("User").Order("created_at desc")
	if ownerID != nil {
		q = q.Where("user_id = ?", *ownerID)
	}
	if err := q.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *Service) GetLostReportByID(id uint) (*models.UserLostReport, error) {
	var report models.UserLostReport
	err := s.DB.Preload("User").First(&report, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *Service) SaveLostReport(report *models.UserLostReport) error {
	return s.DB.Save(report).Error
}

func (s *Service) DeleteLostReport(id uint) error {
	return s.DB.Delete(&models.UserLostReport{}, id).Error
}

// ----- Feedback -----

func (s *Service) CreateFeedback(fb *models.Feedback) error {
	if err := s.DB.Create(fb).Error; err != nil {
		log.Printf("ERROR: Failed to create feedback for user %d: %v", fb.UserID, err)
		return err
	}
	return nil
}

func (s *Service) ListFeedback(ownerID *uint) ([]models.Feedback, error) {
	var fbs []models.Feedback
	q := s.DB.Preload("User").Order("created_at desc")
	if ownerID != nil {
		q = q.Where("user_id = ?", *ownerID)
	}
	if err := q.Find(&fbs).Error; err != nil {
		return nil, err
	}
	return fbs, nil
}

func (s *Service) GetFeedbackByID(id uint) (*models.Feedback, error) {
	var fb models.Feedback
	err := s.DB.Preload("User").First(&fb, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fb, nil
}

func (s *Service) SaveFeedback(fb *models.Feedback) error {
	return s.DB.Save(fb).Error
}

func (s *Service) DeleteFeedback(id uint) error {
	return s.DB.Delete(&models.Feedback{}, id).Error
}

// ----- Complaints -----

func (s *Service) CreateComplaint(complaint *models.Complaint) error {
	if complaint.Status == "" {
		complaint.Status = models.ComplaintOpen
	}
	if err := s.DB.Create(complaint).Error; err != nil {
		log.Printf("ERROR: Failed to create complaint for user %d: %v", complaint.UserID, err)
		return err
	}
	return nil
}

func (s *Service) ListComplaints(ownerID *uint) ([]models.Complaint, error) {
	var complaints []models.Complaint
	q := s.DB.Preload("User").Order("created_at desc")
	if ownerID != nil {
		q = q.Where("user_id = ?", *ownerID)
	}
	if err := q.Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

func (s *Service) GetComplaintByID(id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.DB.Preload("User").First(&complaint, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (s *Service) SaveComplaint(complaint *models.Complaint) error {
	return s.DB.Save(complaint).Error
}

func (s *Service) DeleteComplaint(id uint) error {
	return s.DB.Delete(&models.Complaint{}, id).Error
}

// ----- Journeys -----

func (s *Service) CreateJourney(journey *models.Journey) error {
	if err := s.DB.Create(journey).Error; err != nil {
		log.Printf("ERROR: Failed to create journey for user %d: %v", journey.UserID, err)
		return err
	}
	return nil
}

// ListJourneys is always owner-filtered; journeys have no admin-wide
// listing.
func (s *Service) ListJourneys(ownerID uint) ([]models.Journey, error) {
	var journeys []models.Journey
	err := s.DB.Where("user_id = ?", ownerID).Order("date desc").Find(&journeys).Error
	if err != nil {
		return nil, err
	}
	return journeys, nil
}

func (s *Service) GetJourneyByID(id uint) (*models.Journey, error) {
	var journey models.Journey
	err := s.DB.First(&journey, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &journey, nil
}

func (s *Service) SaveJourney(journey *models.Journey) error {
	return s.DB.Save(journey).Error
}

func (s *Service) DeleteJourney(id uint) error {
	return s.DB.Delete(&models.Journey{}, id).Error
}

// ----- Payments -----

func (s *Service) CreatePayment(payment *models.Payment) error {
	if err := s.DB.Create(payment).Error; err != nil {
		log.Printf("ERROR: Failed to create payment for user %d: %v", payment.UserID, err)
		return err
	}
	return nil
}

// ListPayments is always owner-filtered; payments have no admin-wide
// listing.
func (s *Service) ListPayments(ownerID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.DB.Where("user_id = ?", ownerID).Order("created_at desc").Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *Service) GetPaymentByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	err := s.DB.First(&payment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// DeletePayment clears the payment reference on any journey that links
// this payment, then deletes the payment row. Journeys survive the
// deletion with payment_id set to NULL.
func (s *Service) DeletePayment(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Journey{}).
			Where("payment_id = ?", id).
			Update("payment_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Payment{}, id).Error
	})
}

package storage_test

import (
	"testing"
	"time"

	"github.com/Sadman-26/Metro-Rail-Project/internal/models"
	"github.com/Sadman-26/Metro-Rail-Project/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStorage runs the service against an in-memory sqlite database
// so the gorm call paths are exercised for real.
func newTestStorage(t *testing.T) *storage.Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Payment{},
		&models.Journey{},
		&models.LostItem{},
		&models.UserLostReport{},
		&models.Feedback{},
		&models.Complaint{},
	))
	return storage.NewStorageService(db, nil)
}

func createUser(t *testing.T, s *storage.Service, username string) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "",
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, s.CreateUser(user))
	return user
}

func TestUserLookups(t *testing.T) {
	s := newTestStorage(t)
	user := createUser(t, s, "sadmansion")

	byEmail, err := s.GetUserByEmail("sadmansion@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)

	byUsername, err := s.GetUserByUsername("sadmansion")
	require.NoError(t, err)
	require.NotNil(t, byUsername)

	missing, err := s.GetUserByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCreateLostItem_DefaultsStatus(t *testing.T) {
	s := newTestStorage(t)
	user := createUser(t, s, "poster")

	item := &models.LostItem{
		Title:       "Black Leather Wallet",
		Description: "Found on a seat",
		Location:    "Uttara North Station",
		PostedByID:  user.ID,
	}
	require.NoError(t, s.CreateLostItem(item))

	got, err := s.GetLostItemByID(item.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.StatusUnclaimed, got.Status)
	// Poster preloaded for display-name denormalization; blank name
	// falls back to the username.
	assert.Equal(t, "poster", got.PostedBy.DisplayName())
}

func TestListLostItems_NewestFirst(t *testing.T) {
	s := newTestStorage(t)
	user := createUser(t, s, "poster")

	for _, title := range []string{"Umbrella", "Wallet", "Phone"} {
		require.NoError(t, s.CreateLostItem(&models.LostItem{
			Title: title, Description: "d", Location: "l", PostedByID: user.ID,
		}))
	}

	items, err := s.ListLostItems()
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestCreateComplaint_DefaultsOpen(t *testing.T) {
	s := newTestStorage(t)
	user := createUser(t, s, "rider")

	complaint := &models.Complaint{
		UserID:      user.ID,
		Title:       "Broken ticket machine",
		Description: "Out of order at Agargaon",
		Urgency:     models.UrgencyMedium,
	}
	require.NoError(t, s.CreateComplaint(complaint))

	got, err := s.GetComplaintByID(complaint.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintOpen, got.Status)
}

func TestOwnerFilteredListing(t *testing.T) {
	s := newTestStorage(t)
	alice := createUser(t, s, "alice")
	bob := createUser(t, s, "bob")

	for _, u := range []*models.User{alice, bob} {
		require.NoError(t, s.CreateFeedback(&models.Feedback{
			UserID: u.ID, Rating: 5, Comment: "Always on time",
		}))
	}

	all, err := s.ListFeedback(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	aliceOnly, err := s.ListFeedback(&alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceOnly, 1)
	assert.Equal(t, alice.ID, aliceOnly[0].UserID)
}

func TestListJourneysAndPayments_AlwaysOwnerFiltered(t *testing.T) {
	s := newTestStorage(t)
	alice := createUser(t, s, "alice")
	bob := createUser(t, s, "bob")

	for _, u := range []*models.User{alice, bob} {
		require.NoError(t, s.CreatePayment(&models.Payment{
			UserID: u.ID, Method: models.MethodBkash, Reference: "TXN", Amount: 60,
		}))
		require.NoError(t, s.CreateJourney(&models.Journey{
			UserID: u.ID, Route: "Agargaon to Motijheel",
			Date: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), Fare: 60,
		}))
	}

	journeys, err := s.ListJourneys(alice.ID)
	require.NoError(t, err)
	require.Len(t, journeys, 1)
	assert.Equal(t, alice.ID, journeys[0].UserID)

	payments, err := s.ListPayments(bob.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, bob.ID, payments[0].UserID)
}

// Deleting a payment must leave any journey that referenced it in
// place, with the link cleared rather than cascading.
func TestDeletePayment_ClearsJourneyReference(t *testing.T) {
	s := newTestStorage(t)
	user := createUser(t, s, "rider")

	payment := &models.Payment{
		UserID: user.ID, Method: models.MethodNagad, Reference: "TXN000001", Amount: 100,
	}
	require.NoError(t, s.CreatePayment(payment))

	journey := &models.Journey{
		UserID:    user.ID,
		Route:     "Uttara North to Motijheel",
		Date:      time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
		Fare:      100,
		PaymentID: &payment.ID,
	}
	require.NoError(t, s.CreateJourney(journey))

	require.NoError(t, s.DeletePayment(payment.ID))

	gone, err := s.GetPaymentByID(payment.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := s.GetJourneyByID(journey.ID)
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.Nil(t, kept.PaymentID)
}

func TestGettersReturnNilForMissingRows(t *testing.T) {
	s := newTestStorage(t)

	item, err := s.GetLostItemByID(404)
	require.NoError(t, err)
	assert.Nil(t, item)

	complaint, err := s.GetComplaintByID(404)
	require.NoError(t, err)
	assert.Nil(t, complaint)

	journey, err := s.GetJourneyByID(404)
	require.NoError(t, err)
	assert.Nil(t, journey)
}

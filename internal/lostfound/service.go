// Package lostfound implements the lost & found listing: publicly
// readable items, created by authenticated riders, mutable only by the
// original poster or an admin.
package lostfound

import (
	"log"
	"strings"

	"github.com/Sadman-26/Metro-Rail-Project/internal/apperr"
	"github.com/Sadman-26/Metro-Rail-Project/internal/models"
	"github.com/Sadman-26/Metro-Rail-Project/internal/storage"
)

// Service handles the business logic for lost items.
type Service struct {
	Storage storage.Storage
}

// NewService creates a new lost & found service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// CreateInput is a lost-item create payload. ImageRef is the already
// chosen filename or path; the handler decides between an uploaded
// file's stored name, an explicit image_url value, or the placeholder.
// Any poster value the client sent was discarded before this point.
type CreateInput struct {
	Title       string
	Description string
	Location    string
	Status      string
	ImageRef    string
}

// UpdateInput carries a partial update; nil fields are left untouched.
type UpdateInput struct {
	Title       *string
	Description *string
	Location    *string
	Status      *string
	ImageRef    *string
}

// List returns all lost items, newest first. No authentication needed.
func (s *Service) List() ([]models.LostItem, error) {
	items, err := s.Storage.ListLostItems()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

// Get returns a single lost item by id.
func (s *Service) Get(id uint) (*models.LostItem, error) {
	item, err := s.Storage.GetLostItemByID(id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if item == nil {
		return nil, apperr.NotFound("lost item")
	}
	return item, nil
}

// Create stores a new lost item. The poster is always the caller;
// status defaults to unclaimed; an absent image falls back to the
// placeholder filename.
func (s *Service) Create(caller *models.User, input CreateInput) (*models.LostItem, error) {
	if caller == nil {
		return nil, apperr.Unauthorized("authentication required")
	}

	fields := map[string]string{}
	if strings.TrimSpace(input.Title) == "" {
		fields["title"] = "this field is required"
	}
	if strings.TrimSpace(input.Description) == "" {
		fields["description"] = "this field is required"
	}
	if strings.TrimSpace(input.Location) == "" {
		fields["location"] = "this field is required"
	}
	if input.Status != "" && !models.ValidLostItemStatus(input.Status) {
		fields["status"] = "must be one of: claimed, unclaimed"
	}
	if len(fields) > 0 {
		log.Printf("INFO: Lost item create by user %d rejected: %v", caller.ID, fields)
		return nil, apperr.Validation(fields)
	}

	ref := input.ImageRef
	if ref == "" {
		ref = PlaceholderFilename
	}
	status := input.Status
	if status == "" {
		status = models.StatusUnclaimed
	}

	item := &models.LostItem{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    &ref,
		Location:    input.Location,
		Status:      status,
		PostedByID:  caller.ID,
		PostedBy:    *caller,
	}
	if err := s.Storage.CreateLostItem(item); err != nil {
		return nil, apperr.Internal(err)
	}
	log.Printf("INFO: Lost item %d created by user %d", item.ID, caller.ID)
	return item, nil
}

// Update applies a partial update. Only the original poster or an
// admin may mutate an item.
func (s *Service) Update(id uint, caller *models.User, input UpdateInput) (*models.LostItem, error) {
	item, err := s.authorize(id, caller)
	if err != nil {
		return nil, err
	}

	if input.Status != nil && !models.ValidLostItemStatus(*input.Status) {
		return nil, apperr.ValidationField("status", "must be one of: claimed, unclaimed")
	}
	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Location != nil {
		item.Location = *input.Location
	}
	if input.Status != nil {
		item.Status = *input.Status
	}
	if input.ImageRef != nil {
		item.ImageURL = input.ImageRef
	}

	if err := s.Storage.SaveLostItem(item); err != nil {
		return nil, apperr.Internal(err)
	}
	log.Printf("INFO: Lost item %d updated by user %d", item.ID, caller.ID)
	return item, nil
}

// Delete removes an item, subject to the same poster-or-admin check.
func (s *Service) Delete(id uint, caller *models.User) error {
	item, err := s.authorize(id, caller)
	if err != nil {
		return err
	}
	if err := s.Storage.DeleteLostItem(item.ID); err != nil {
		return apperr.Internal(err)
	}
	log.Printf("INFO: Lost item %d deleted by user %d", item.ID, caller.ID)
	return nil
}

// authorize loads the item and enforces the poster-or-admin rule for
// mutation. Listings are public, so a denied caller still learns the
// item exists: that is Forbidden, not NotFound.
func (s *Service) authorize(id uint, caller *models.User) (*models.LostItem, error) {
	if caller == nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	item, err := s.Storage.GetLostItemByID(id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if item == nil {
		return nil, apperr.NotFound("lost item")
	}
	if item.PostedByID != caller.ID && !caller.IsAdmin {
		return nil, apperr.Forbidden("only the poster or an admin may modify this item")
	}
	return item, nil
}

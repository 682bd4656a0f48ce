// Package records implements the rider-submitted record types that share
// one submission pipeline: user lost reports, feedback, and complaints.
// Every create validates the payload, stamps the caller as owner (any
// owner value in the payload is discarded), applies defaults, and
// persists a single row. Listing is ownership-scoped: riders see their
// own rows, and admins see every row because all three entity types
// grant admin-wide visibility in config.AdminSeesAll.
package records

import (
	"log"
	"strings"

	"github.com/Sadman-26/Metro-Rail-Project/internal/apperr"
	"github.com/Sadman-26/Metro-Rail-Project/internal/config"
	"github.com/Sadman-26/Metro-Rail-Project/internal/models"
	"github.com/Sadman-26/Metro-Rail-Project/internal/storage"
)

// Service handles the business logic for submitted records.
type Service struct {
	Storage storage.Storage
}

// NewService creates a new records service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// ownerScope returns the owner filter for a list call: nil (all rows)
// when the caller is an admin and the entity grants admin-wide
// visibility, otherwise the caller's own id.
func ownerScope(entity string, caller *models.User) *uint {
	if caller.IsAdmin && config.AdminSeesAll[entity] {
		return nil
	}
	id := caller.ID
	return &id
}

// visibleTo reports whether a row owned by ownerID is inside the
// caller's visible set for the entity.
func visibleTo(entity string, caller *models.User, ownerID uint) bool {
	if ownerID == caller.ID {
		return true
	}
	return caller.IsAdmin && config.AdminSeesAll[entity]
}

// ----- Lost reports -----

type LostReportInput struct {
	Title       string
	Description string
	Contact     string
}

func (s *Service) ListLostReports(caller *models.User) ([]models.UserLostReport, error) {
	if caller == nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	reports, err := s.Storage.ListLostReports(ownerScope(config.EntityLostReports, caller))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return reports, nil
}

func (s *Service) GetLostReport(id uint, caller *models.User) (*models.UserLostReport, error) {
	if caller == nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	report, err := s.Storage.GetLostReportByID(id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if report == nil || !visibleTo(config.EntityLostReports, caller, report.UserID) {
		return nil, apperr.NotFound("lost report")
	}
	return report, nil
}

func (s *Service) CreateLostReport(caller *models.User, input LostReportInput) (*models.UserLostReport, error) {
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
	if strings.TrimSpace(input.Contact) == "" {
		fields["contact"] = "this field is required"
	}
	if len(fields) > 0 {
		log.Printf("INFO: Lost report by user %d rejected: %v", caller.ID, fields)
		return nil, apperr.Validation(fields)
	}

	report := &models.UserLostReport{
		UserID:      caller.ID,
		User:        *caller,
		Title:       input.Title,
		Description: input.Description,
		Contact:     input.Contact,
	}
	if err := s.Storage.CreateLostReport(report); err != nil {
		return nil, apperr.Internal(err)
	}
	log.Printf("INFO: Lost report %d created by user %d", report.ID, caller.ID)
	return report, nil
}

func (s *Service) DeleteLostReport(id uint, caller *models.User) error {
	report, err := s.GetLostReport(id, caller)
	if err != nil {
		return err
	}
	if err := s.Storage.DeleteLostReport(report.ID); err != nil {
		return apperr.Internal(err)
	}
	log.Printf("INFO: Lost report %d deleted by user %d", report.ID, caller.ID)
	return nil
}

// ----- Feedback -----

type FeedbackInput struct {
	Rating  int
	Comment string
}

func (s *Service) ListFeedback(caller *models.User) ([]models.Feedback, error) {
	if caller == nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	fbs, err := s.Storage.ListFeedback(ownerScope(config.EntityFeedback, caller))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return fbs, nil
}

func (s *Service) GetFeedback(id uint, caller *models.User) (*models.Feedback, error) {
	if caller == nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	fb, err := s.Storage.GetFeedbackByID(id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if fb == nil || !visibleTo(config.EntityFeedback, caller, fb.UserID) {
		return nil, apperr.NotFound("feedback")
	}
	return fb, nil
}

func (s *Service) CreateFeedback(caller *models.User, input FeedbackInput) (*models.Feedback, error) {
	if caller == nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	fields := map[string]string{}
	if input.Rating == 0 {
		fields["rating"] = "this field is required"
	} else if input.Rating < 1 || input.Rating > 5 {
		fields["rating"] = "must be between 1 and 5"
	}
	if strings.TrimSpace(input.Comment) == "" {
		fields["comment"] = "this field is required"
	}
	if len(fields) > 0 {
		log.Printf("INFO: Feedback by user %d rejected: %v", caller.ID, fields)
		return nil, apperr.Validation(fields)
	}

	fb := &models.Feedback{
		UserID:  caller.ID,
		User:    *caller,
		Rating:  input.Rating,
		Comment: input.Comment,
	}
	if err := s.Storage.CreateFeedback(fb); err != nil {
		return nil, apperr.Internal(err)
	}
	log.Printf("INFO: Feedback %d created by user %d", fb.ID, caller.ID)
	return fb, nil
}

func (s *Service) DeleteFeedback(id uint, caller *models.User) error {
	fb, err := s.GetFeedback(id, caller)
	if err != nil {
		return err
	}
	if err := s.Storage.DeleteFeedback(fb.ID); err != nil {
		return apperr.Internal(err)
	}
	log.Printf("INFO: Feedback %d deleted by user %d", fb.ID, caller.ID)
	return nil
}

// ----- Complaints -----

type ComplaintInput struct {
	Title       string
	Description string
	Urgency     string
	Status      string
}

// ComplaintUpdate is a partial update; nil fields are left untouched.
type ComplaintUpdate struct {
	Title       *string
	Description *string
	Urgency     *string
	Status      *string
}

func (s *Service) ListComplaints(caller *models.User) ([]models.Complaint, error) {
	if caller == nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	complaints, err := s.Storage.ListComplaints(ownerScope(config.EntityComplaints, caller))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return complaints, nil
}

func (s *Service) GetComplaint(id uint, caller *models.User) (*models.Complaint, error) {
	if caller == nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	complaint, err := s.Storage.GetComplaintByID(id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if complaint == nil || !visibleTo(config.EntityComplaints, caller, complaint.UserID) {
		return nil, apperr.NotFound("complaint")
	}
	return complaint, nil
}

func (s *Service) CreateComplaint(caller *models.User, input ComplaintInput) (*models.Complaint, error) {
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
	if input.Urgency == "" {
		fields["urgency"] = "this field is required"
	} else if !models.ValidUrgency(input.Urgency) {
		fields["urgency"] = "must be one of: low, medium, high"
	}
	if input.Status != "" && !models.ValidComplaintStatus(input.Status) {
		fields["status"] = "must be one of: open, closed"
	}
	if len(fields) > 0 {
		log.Printf("INFO: Complaint by user %d rejected: %v", caller.ID, fields)
		return nil, apperr.Validation(fields)
	}

	status := input.Status
	if status == "" {
		status = models.ComplaintOpen
	}
	complaint := &models.Complaint{
		UserID:      caller.ID,
		User:        *caller,
		Title:       input.Title,
		Description: input.Description,
		Urgency:     input.Urgency,
		Status:      status,
	}
	if err := s.Storage.CreateComplaint(complaint); err != nil {
		return nil, apperr.Internal(err)
	}
	log.Printf("INFO: Complaint %d created by user %d", complaint.ID, caller.ID)
	return complaint, nil
}

// UpdateComplaint lets the owner (or an admin, who can see the row)
// change any field, typically toggling status between open and closed.
// Both enum fields are free mutable values, not guarded transitions.
func (s *Service) UpdateComplaint(id uint, caller *models.User, input ComplaintUpdate) (*models.Complaint, error) {
	complaint, err := s.GetComplaint(id, caller)
	if err != nil {
		return nil, err
	}
	if input.Urgency != nil && !models.ValidUrgency(*input.Urgency) {
		return nil, apperr.ValidationField("urgency", "must be one of: low, medium, high")
	}
	if input.Status != nil && !models.ValidComplaintStatus(*input.Status) {
		return nil, apperr.ValidationField("status", "must be one of: open, closed")
	}
	if input.Title != nil {
		complaint.Title = *input.Title
	}
	if input.Description != nil {
		complaint.Description = *input.Description
	}
	if input.Urgency != nil {
		complaint.Urgency = *input.Urgency
	}
	if input.Status != nil {
		complaint.Status = *input.Status
	}
	if err := s.Storage.SaveComplaint(complaint); err != nil {
		return nil, apperr.Internal(err)
	}
	log.Printf("INFO: Complaint %d updated by user %d", complaint.ID, caller.ID)
	return complaint, nil
}

func (s *Service) DeleteComplaint(id uint, caller *models.User) error {
	complaint, err := s.GetComplaint(id, caller)
	if err != nil {
		return err
	}
	if err := s.Storage.DeleteComplaint(complaint.ID); err != nil {
		return apperr.Internal(err)
	}
	log.Printf("INFO: Complaint %d deleted by user %d", complaint.ID, caller.ID)
	return nil
}

package handler

import (
	"net/http"
	"time"

	"github.com/Sadman-26/Metro-Rail-Project/internal/models"
	"github.com/Sadman-26/Metro-Rail-Project/internal/records"

	"github.com/gin-gonic/gin"
)

// ----- Lost reports -----

type lostReportRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Contact     string `json:"contact" binding:"required"`
}

type lostReportResponse struct {
	ID          uint      `json:"id"`
	User        uint      `json:"user"`
	UserName    string    `json:"user_name"`
	UserEmail   string    `json:"user_email"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Contact     string    `json:"contact"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func newLostReportResponse(r *models.UserLostReport) lostReportResponse {
	return lostReportResponse{
		ID:          r.ID,
		User:        r.UserID,
		UserName:    r.User.DisplayName(),
		UserEmail:   r.User.Email,
		Title:       r.Title,
		Description: r.Description,
		Contact:     r.Contact,
		SubmittedAt: r.CreatedAt,
	}
}

func (h *Handler) ListLostReports(c *gin.Context) {
	reports, err := h.Records.ListLostReports(caller(c))
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]lostReportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, newLostReportResponse(&reports[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetLostReport(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	report, err := h.Records.GetLostReport(id, caller(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newLostReportResponse(report))
}

func (h *Handler) CreateLostReport(c *gin.Context) {
	var req lostReportRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}
	report, err := h.Records.CreateLostReport(caller(c), records.LostReportInput{
		Title:       req.Title,
		Description: req.Description,
		Contact:     req.Contact,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newLostReportResponse(report))
}

func (h *Handler) DeleteLostReport(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.Records.DeleteLostReport(id, caller(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ----- Feedback -----

type feedbackRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

type feedbackResponse struct {
	ID        uint      `json:"id"`
	User      uint      `json:"user"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

func newFeedbackResponse(f *models.Feedback) feedbackResponse {
	return feedbackResponse{
		ID:        f.ID,
		User:      f.UserID,
		UserName:  f.User.DisplayName(),
		UserEmail: f.User.Email,
		Rating:    f.Rating,
		Comment:   f.Comment,
		Category:  f.Category(),
		CreatedAt: f.CreatedAt,
	}
}

func (h *Handler) ListFeedback(c *gin.Context) {
	fbs, err := h.Records.ListFeedback(caller(c))
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]feedbackResponse, 0, len(fbs))
	for i := range fbs {
		out = append(out, newFeedbackResponse(&fbs[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetFeedback(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	fb, err := h.Records.GetFeedback(id, caller(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newFeedbackResponse(fb))
}

func (h *Handler) CreateFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}
	fb, err := h.Records.CreateFeedback(caller(c), records.FeedbackInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newFeedbackResponse(fb))
}

func (h *Handler) DeleteFeedback(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.Records.DeleteFeedback(id, caller(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ----- Complaints -----

type complaintRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Urgency     string `json:"urgency" binding:"required,oneof=low medium high"`
	Status      string `json:"status"`
}

type complaintUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Urgency     *string `json:"urgency"`
	Status      *string `json:"status"`
}

type complaintResponse struct {
	ID          uint      `json:"id"`
	User        uint      `json:"user"`
	UserName    string    `json:"user_name"`
	UserEmail   string    `json:"user_email"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Urgency     string    `json:"urgency"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func newComplaintResponse(cm *models.Complaint) complaintResponse {
	return complaintResponse{
		ID:          cm.ID,
		User:        cm.UserID,
		UserName:    cm.User.DisplayName(),
		UserEmail:   cm.User.Email,
		Title:       cm.Title,
		Description: cm.Description,
		Urgency:     cm.Urgency,
		Status:      cm.Status,
		SubmittedAt: cm.CreatedAt,
	}
}

func (h *Handler) ListComplaints(c *gin.Context) {
	complaints, err := h.Records.ListComplaints(caller(c))
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]complaintResponse, 0, len(complaints))
	for i := range complaints {
		out = append(out, newComplaintResponse(&complaints[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetComplaint(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	complaint, err := h.Records.GetComplaint(id, caller(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newComplaintResponse(complaint))
}

func (h *Handler) CreateComplaint(c *gin.Context) {
	var req complaintRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}
	complaint, err := h.Records.CreateComplaint(caller(c), records.ComplaintInput{
		Title:       req.Title,
		Description: req.Description,
		Urgency:     req.Urgency,
		Status:      req.Status,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newComplaintResponse(complaint))
}

func (h *Handler) UpdateComplaint(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	var req complaintUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}
	complaint, err := h.Records.UpdateComplaint(id, caller(c), records.ComplaintUpdate{
		Title:       req.Title,
		Description: req.Description,
		Urgency:     req.Urgency,
		Status:      req.Status,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newComplaintResponse(complaint))
}

func (h *Handler) DeleteComplaint(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.Records.DeleteComplaint(id, caller(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

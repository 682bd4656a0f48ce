package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Sadman-26/Metro-Rail-Project/internal/apperr"
	"github.com/Sadman-26/Metro-Rail-Project/internal/auth"
	"github.com/Sadman-26/Metro-Rail-Project/internal/lostfound"
	"github.com/Sadman-26/Metro-Rail-Project/internal/records"
	"github.com/Sadman-26/Metro-Rail-Project/internal/trips"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Handler wires the HTTP surface to the domain services.
type Handler struct {
	Auth      *auth.Service
	LostFound *lostfound.Service
	Records   *records.Service
	Trips     *trips.Service
}

func NewHandler(a *auth.Service, lf *lostfound.Service, rec *records.Service, tr *trips.Service) *Handler {
	return &Handler{Auth: a, LostFound: lf, Records: rec, Trips: tr}
}

// RegisterRoutes mounts every endpoint under /api, mirroring the
// original router layout.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register/", h.Register)
	authGroup.POST("/login/", h.Login)
	authGroup.POST("/logout/", h.RequireAuth, h.Logout)
	authGroup.GET("/user/", h.RequireAuth, h.CurrentUser)

	items := api.Group("/lost-items")
	items.GET("/", h.ListLostItems)
	items.GET("/:id", h.GetLostItem)
	items.POST("/", h.RequireAuth, h.CreateLostItem)
	items.PUT("/:id", h.RequireAuth, h.UpdateLostItem)
	items.PATCH("/:id", h.RequireAuth, h.UpdateLostItem)
	items.DELETE("/:id", h.RequireAuth, h.DeleteLostItem)

	reports := api.Group("/lost-reports", h.RequireAuth)
	reports.GET("/", h.ListLostReports)
	reports.GET("/:id", h.GetLostReport)
	reports.POST("/", h.CreateLostReport)
	reports.DELETE("/:id", h.DeleteLostReport)

	feedback := api.Group("/feedback", h.RequireAuth)
	feedback.GET("/", h.ListFeedback)
	feedback.GET("/:id", h.GetFeedback)
	feedback.POST("/", h.CreateFeedback)
	feedback.DELETE("/:id", h.DeleteFeedback)

	complaints := api.Group("/complaints", h.RequireAuth)
	complaints.GET("/", h.ListComplaints)
	complaints.GET("/:id", h.GetComplaint)
	complaints.POST("/", h.CreateComplaint)
	complaints.PUT("/:id", h.UpdateComplaint)
	complaints.PATCH("/:id", h.UpdateComplaint)
	complaints.DELETE("/:id", h.DeleteComplaint)

	journeys := api.Group("/journeys", h.RequireAuth)
	journeys.GET("/", h.ListJourneys)
	journeys.GET("/:id", h.GetJourney)
	journeys.POST("/", h.CreateJourney)
	journeys.PUT("/:id", h.UpdateJourney)
	journeys.PATCH("/:id", h.UpdateJourney)
	journeys.DELETE("/:id", h.DeleteJourney)

	payments := api.Group("/payments", h.RequireAuth)
	payments.GET("/", h.ListPayments)
	payments.GET("/:id", h.GetPayment)
	payments.POST("/", h.CreatePayment)
	payments.DELETE("/:id", h.DeletePayment)
}

// writeError maps an error from the taxonomy to its HTTP response.
// Validation errors carry the field map in an "errors" object.
func writeError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if fields := apperr.FieldsOf(err); fields != nil {
		c.JSON(status, gin.H{"error": "Validation failed", "errors": fields})
		return
	}
	var e *apperr.Error
	if errors.As(err, &e) && e.Kind != apperr.KindInternal {
		c.JSON(status, gin.H{"error": e.Message})
		return
	}
	c.JSON(status, gin.H{"error": "Internal server error"})
}

// bindJSON decodes the body into dst, flattening validator tag
// failures into the same field → reason map the services produce.
func bindJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[strings.ToLower(fe.Field())] = bindingReason(fe)
			}
			return apperr.Validation(fields)
		}
		return apperr.ValidationField("body", "invalid request body")
	}
	return nil
}

func bindingReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gt", "gte", "min", "max":
		return "value out of range"
	default:
		return "invalid value"
	}
}

// idParam parses the :id path segment.
func idParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, apperr.NotFound("record")
	}
	return uint(id), nil
}

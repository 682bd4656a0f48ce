package handler

import (
	"net/http"
	"time"

	"github.com/Sadman-26/Metro-Rail-Project/internal/apperr"
	"github.com/Sadman-26/Metro-Rail-Project/internal/models"
	"github.com/Sadman-26/Metro-Rail-Project/internal/trips"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// ----- Journeys -----

type journeyRequest struct {
	Route     string  `json:"route" binding:"required"`
	Date      string  `json:"date" binding:"required"`
	Fare      float64 `json:"fare" binding:"required,gt=0"`
	PaymentID *uint   `json:"payment"`
}

type journeyUpdateRequest struct {
	Route     *string  `json:"route"`
	Date      *string  `json:"date"`
	Fare      *float64 `json:"fare"`
	PaymentID *uint    `json:"payment"`
}

type journeyResponse struct {
	ID      uint    `json:"id"`
	User    uint    `json:"user"`
	Route   string  `json:"route"`
	Date    string  `json:"date"`
	Fare    float64 `json:"fare"`
	Payment *uint   `json:"payment"`
}

func newJourneyResponse(j *models.Journey) journeyResponse {
	return journeyResponse{
		ID:      j.ID,
		User:    j.UserID,
		Route:   j.Route,
		Date:    j.Date.Format(dateLayout),
		Fare:    j.Fare,
		Payment: j.PaymentID,
	}
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperr.ValidationField("date", "must be formatted YYYY-MM-DD")
	}
	return date, nil
}

func (h *Handler) ListJourneys(c *gin.Context) {
	journeys, err := h.Trips.ListJourneys(caller(c))
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]journeyResponse, 0, len(journeys))
	for i := range journeys {
		out = append(out, newJourneyResponse(&journeys[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetJourney(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	journey, err := h.Trips.GetJourney(id, caller(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newJourneyResponse(journey))
}

func (h *Handler) CreateJourney(c *gin.Context) {
	var req journeyRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		writeError(c, err)
		return
	}
	journey, err := h.Trips.CreateJourney(caller(c), trips.JourneyInput{
		Route:     req.Route,
		Date:      date,
		Fare:      req.Fare,
		PaymentID: req.PaymentID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newJourneyResponse(journey))
}

func (h *Handler) UpdateJourney(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	var req journeyUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}
	update := trips.JourneyUpdate{
		Route:     req.Route,
		Fare:      req.Fare,
		PaymentID: req.PaymentID,
	}
	if req.Date != nil {
		date, derr := parseDate(*req.Date)
		if derr != nil {
			writeError(c, derr)
			return
		}
		update.Date = &date
	}
	journey, err := h.Trips.UpdateJourney(id, caller(c), update)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newJourneyResponse(journey))
}

func (h *Handler) DeleteJourney(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.Trips.DeleteJourney(id, caller(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ----- Payments -----

type paymentRequest struct {
	Method    string  `json:"method" binding:"required,oneof=bKash Nagad Rocket Card"`
	Reference string  `json:"reference" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

type paymentResponse struct {
	ID        uint      `json:"id"`
	User      uint      `json:"user"`
	Method    string    `json:"method"`
	Reference string    `json:"reference"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

func newPaymentResponse(p *models.Payment) paymentResponse {
	return paymentResponse{
		ID:        p.ID,
		User:      p.UserID,
		Method:    p.Method,
		Reference: p.Reference,
		Amount:    p.Amount,
		Timestamp: p.CreatedAt,
	}
}

func (h *Handler) ListPayments(c *gin.Context) {
	payments, err := h.Trips.ListPayments(caller(c))
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]paymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, newPaymentResponse(&payments[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetPayment(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	payment, err := h.Trips.GetPayment(id, caller(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPaymentResponse(payment))
}

func (h *Handler) CreatePayment(c *gin.Context) {
	var req paymentRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}
	payment, err := h.Trips.CreatePayment(caller(c), trips.PaymentInput{
		Method:    req.Method,
		Reference: req.Reference,
		Amount:    req.Amount,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newPaymentResponse(payment))
}

func (h *Handler) DeletePayment(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.Trips.DeletePayment(id, caller(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

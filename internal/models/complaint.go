package models

import "gorm.io/gorm"

// Complaint urgency levels.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// Complaint statuses.
const (
	ComplaintOpen   = "open"
	ComplaintClosed = "closed"
)

type Complaint struct {
	gorm.Model
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	User        User   `json:"-"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Urgency     string `gorm:"type:varchar(10);not null" json:"urgency"`
	Status      string `gorm:"type:varchar(10);not null;default:open" json:"status"`
}

// ValidUrgency reports whether u is one of the three urgency levels.
func ValidUrgency(u string) bool {
	return u == UrgencyLow || u == UrgencyMedium || u == UrgencyHigh
}

// ValidComplaintStatus reports whether s is open or closed.
func ValidComplaintStatus(s string) bool {
	return s == ComplaintOpen || s == ComplaintClosed
}

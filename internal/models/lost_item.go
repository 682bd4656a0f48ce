package models

import "gorm.io/gorm"

// Lost item statuses.
const (
	StatusClaimed   = "claimed"
	StatusUnclaimed = "unclaimed"
)

// LostItem is a publicly listed found item. ImageURL is whatever reference
// the poster supplied: an absolute URL, an absolute site path, or a bare
// filename. It is resolved to a display URL only when served.
type LostItem struct {
	gorm.Model
	Title       string  `gorm:"not null" json:"title"`
	Description string  `gorm:"type:text;not null" json:"description"`
	ImageURL    *string `json:"image_url"`
	Location    string  `gorm:"not null" json:"location"`
	Status      string  `gorm:"type:varchar(10);not null" json:"status"`
	PostedByID  uint    `gorm:"not null;index" json:"posted_by"`
	PostedBy    User    `json:"-"`
}

// ValidLostItemStatus reports whether s is one of the two item statuses.
func ValidLostItemStatus(s string) bool {
	return s == StatusClaimed || s == StatusUnclaimed
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Journey is a single trip taken by a rider. A journey may be linked to
// the payment that covered its fare; deleting that payment clears the
// link instead of deleting the journey.
type Journey struct {
	gorm.Model
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `json:"-"`
	Route     string    `gorm:"not null" json:"route"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`
	Fare      float64   `gorm:"type:numeric(10,2);not null" json:"fare"`
	PaymentID *uint     `gorm:"index" json:"payment"`
	Payment   *Payment  `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}

package models

import "gorm.io/gorm"

// UserLostReport is a rider's report of something they lost, as opposed to
// LostItem which lists items that were found. CreatedAt doubles as the
// submission timestamp.
type UserLostReport struct {
	gorm.Model
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	User        User   `json:"-"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Contact     string `gorm:"not null" json:"contact"`
}

package models

import "gorm.io/gorm"

// User represents a registered rider (or admin) of the metro system.
// The embedded gorm.Model provides ID, CreatedAt, UpdatedAt, and DeletedAt.
// Passwords are stored as bcrypt hashes and never serialized.
type User struct {
	gorm.Model
	Name         string `gorm:"type:text" json:"name"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	IsAdmin      bool   `gorm:"default:false" json:"is_admin"`
}

// DisplayName returns the user's name, falling back to the username
// when the name was left blank at registration.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

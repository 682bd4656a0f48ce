package models

import (
	"strings"

	"gorm.io/gorm"
)

// Feedback is a rider's rating and comment. The comment may carry a
// bracketed category prefix, e.g. "[Suggestion] more trains please";
// plain reviews have no prefix.
type Feedback struct {
	gorm.Model
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `json:"-"`
	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"type:text" json:"comment"`
}

// Category extracts the bracketed prefix from the comment, lowercased,
// returning "review" when no prefix is present.
func (f *Feedback) Category() string {
	c := strings.TrimSpace(f.Comment)
	if strings.HasPrefix(c, "[") {
		if end := strings.Index(c, "]"); end > 1 {
			return strings.ToLower(strings.TrimSpace(c[1:end]))
		}
	}
	return "review"
}

package models_test

import (
	"testing"

	"github.com/Sadman-26/Metro-Rail-Project/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFeedbackCategory(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		want    string
	}{
		{"plain comment is a review", "Always on time and clean.", "review"},
		{"suggestion prefix", "[Suggestion] More trains during peak hours.", "suggestion"},
		{"complaint prefix", "[Complaint] AC broken in car 3.", "complaint"},
		{"prefix is case-insensitive", "[SUGGESTION] longer platforms", "suggestion"},
		{"leading whitespace tolerated", "  [Suggestion] something", "suggestion"},
		{"unterminated bracket is a review", "[oops no closing", "review"},
		{"empty brackets are a review", "[] hello", "review"},
		{"empty comment is a review", "", "review"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := models.Feedback{Comment: tt.comment}
			assert.Equal(t, tt.want, fb.Category())
		})
	}
}

func TestUserDisplayName(t *testing.T) {
	named := models.User{Name: "Sadman", Username: "sadmansion"}
	assert.Equal(t, "Sadman", named.DisplayName())

	unnamed := models.User{Username: "sadmansion"}
	assert.Equal(t, "sadmansion", unnamed.DisplayName())
}

func TestEnumHelpers(t *testing.T) {
	assert.True(t, models.ValidPaymentMethod("bKash"))
	assert.False(t, models.ValidPaymentMethod("bkash"), "method values are case-sensitive")
	assert.False(t, models.ValidPaymentMethod("PayPal"))

	assert.True(t, models.ValidUrgency("high"))
	assert.False(t, models.ValidUrgency("extreme"))

	assert.True(t, models.ValidLostItemStatus("unclaimed"))
	assert.False(t, models.ValidLostItemStatus("lost"))

	assert.True(t, models.ValidComplaintStatus("closed"))
	assert.False(t, models.ValidComplaintStatus("resolved"))
}

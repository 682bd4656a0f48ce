package models

import "gorm.io/gorm"

// Accepted payment methods (mobile banking providers plus cards).
const (
	MethodBkash  = "bKash"
	MethodNagad  = "Nagad"
	MethodRocket = "Rocket"
	MethodCard   = "Card"
)

// PaymentMethods lists every accepted value for Payment.Method.
var PaymentMethods = []string{MethodBkash, MethodNagad, MethodRocket, MethodCard}

// Payment is a fare payment made by a rider. CreatedAt doubles as the
// payment timestamp.
type Payment struct {
	gorm.Model
	UserID    uint    `gorm:"not null;index" json:"user_id"`
	User      User    `json:"-"`
	Method    string  `gorm:"type:varchar(10);not null" json:"method"`
	Reference string  `gorm:"not null" json:"reference"`
	Amount    float64 `gorm:"type:numeric(10,2);not null" json:"amount"`
}

// ValidPaymentMethod reports whether m is one of the accepted methods.
func ValidPaymentMethod(m string) bool {
	for _, v := range PaymentMethods {
		if v == m {
			return true
		}
	}
	return false
}

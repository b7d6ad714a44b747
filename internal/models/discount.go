package models

import (
	"gorm.io/gorm"
)

type Discount struct {
	gorm.Model
	Name        string `json:"name"`
	Year        int    `json:"year" gorm:"index"`
	AmountCents int    `json:"amount_cents"`

	// Automatic discounts are applied by the system (e.g. early-bird) and can
	// never be claimed through the attendee-facing flow.
	IsAutomatic bool `json:"is_automatic"`
}

package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type PlanCategory struct {
	gorm.Model
	Name      string `json:"name"`
	Year      int    `json:"year" gorm:"index"`
	Mandatory bool   `json:"mandatory"`
	Ordinal   int    `json:"ordinal"`
	Plans     []Plan `json:"plans"`
}

type Plan struct {
	gorm.Model
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	PlanCategoryID uint         `json:"plan_category_id" gorm:"index"`
	PlanCategory   PlanCategory `json:"-"`
	Year           int          `json:"year" gorm:"index"`
	PriceCents     int          `json:"price_cents"`
	Disabled       bool         `json:"disabled"`

	// InventoryLimited plans advertise remaining availability.
	InventoryLimited bool `json:"inventory_limited"`
	Inventory        int  `json:"inventory"`

	// Quantifiable plans accept quantities above one, up to MaxQuantity.
	Quantifiable bool `json:"quantifiable"`
	MaxQuantity  int  `json:"max_quantity"`

	// NeedsDate plans (e.g. nightly lodging) carry one date per unit.
	NeedsDate bool `json:"needs_date"`

	AgeMin       int `json:"age_min"`
	AgeMax       int `json:"age_max"` // 0 means no upper bound
	DisplayOrder int `json:"display_order"`
}

// EligibleFor reports whether the plan's age restrictions admit an attendee
// of the given age.
func (p *Plan) EligibleFor(age int) bool {
	if age < p.AgeMin {
		return false
	}
	if p.AgeMax > 0 && age > p.AgeMax {
		return false
	}
	return true
}

type AttendeePlan struct {
	gorm.Model
	AttendeeID uint               `json:"attendee_id" gorm:"index"`
	PlanID     uint               `json:"plan_id" gorm:"index"`
	Plan       Plan               `json:"plan"`
	Quantity   int                `json:"quantity"`
	Dates      []AttendeePlanDate `json:"dates" gorm:"constraint:OnDelete:CASCADE"`
}

type AttendeePlanDate struct {
	gorm.Model
	AttendeePlanID uint      `json:"attendee_plan_id" gorm:"index"`
	Date           time.Time `json:"date"`
}

// Validate checks the selection against the plan's own bounds. Plan must be
// preloaded.
func (ap *AttendeePlan) Validate() []string {
	var errs []string
	if ap.Quantity < 0 {
		errs = append(errs, ap.Plan.Name+": quantity cannot be negative")
	}
	max := 1
	if ap.Plan.Quantifiable {
		max = ap.Plan.MaxQuantity
	}
	if max > 0 && ap.Quantity > max {
		errs = append(errs, fmt.Sprintf("%s: quantity cannot exceed %d", ap.Plan.Name, max))
	}
	if ap.Plan.NeedsDate && ap.Quantity > 0 && len(ap.Dates) == 0 {
		errs = append(errs, ap.Plan.Name+": at least one date must be chosen")
	}
	return errs
}

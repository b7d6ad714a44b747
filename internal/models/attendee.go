package models

import (
	"time"

	"gorm.io/gorm"
)

type Attendee struct {
	gorm.Model
	UserID     uint      `json:"user_id" gorm:"index"`
	User       User      `json:"-" gorm:"foreignKey:UserID"`
	Year       int       `json:"year" gorm:"index"`
	GivenName  string    `json:"given_name"`
	FamilyName string    `json:"family_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Gender     string    `json:"gender"` // "m" or "f"
	Birthday   time.Time `json:"birthday"`
	Country    string    `json:"country" gorm:"size:2"`
	Rank       int       `json:"rank"`
	IsPlayer   bool      `json:"is_player"`
	IsPrimary  bool      `json:"is_primary"`
	Anonymous  bool      `json:"anonymous"`

	// Guardian links a minor to a responsible adult attendee.
	GuardianID *uint     `json:"guardian_id"`
	Guardian   *Attendee `json:"-" gorm:"foreignKey:GuardianID"`

	// Admin-only fields, never assignable through the public flow.
	Comment                string `json:"comment"`
	MinorAgreementReceived bool   `json:"minor_agreement_received"`

	AttendeePlans []AttendeePlan `json:"attendee_plans" gorm:"constraint:OnDelete:CASCADE"`
	Activities    []Activity     `json:"activities" gorm:"many2many:attendee_activities"`
	Discounts     []Discount     `json:"discounts" gorm:"many2many:attendee_discounts"`
	Tournaments   []Tournament   `json:"tournaments" gorm:"many2many:attendee_tournaments"`
}

func (a *Attendee) FullName() string {
	return a.GivenName + " " + a.FamilyName
}

// AgeAt returns the attendee's age in whole years on the given date.
func (a *Attendee) AgeAt(date time.Time) int {
	age := date.Year() - a.Birthday.Year()
	anniversary := a.Birthday.AddDate(age, 0, 0)
	if anniversary.After(date) {
		age--
	}
	return age
}

// MinorAt reports whether the attendee is under 18 on the given date.
func (a *Attendee) MinorAt(date time.Time) bool {
	return a.AgeAt(date) < 18
}

// Validate runs field-level checks and returns one message list per field.
// It never touches the database; cross-entity rules live in the registration
// engine. congressStart is the first day of the congress for the attendee's
// year, used for age-dependent rules.
func (a *Attendee) Validate(congressStart time.Time, asAdmin bool) map[string][]string {
	errs := map[string][]string{}
	add := func(field, msg string) {
		errs[field] = append(errs[field], msg)
	}

	if a.GivenName == "" {
		add("given_name", "is required")
	}
	if a.FamilyName == "" {
		add("family_name", "is required")
	}
	if a.Birthday.IsZero() {
		add("birthday", "is required")
	}
	if a.Gender != "m" && a.Gender != "f" {
		add("gender", "must be m or f")
	}
	if a.Country != "" && len(a.Country) != 2 {
		add("country", "must be a 2-letter code")
	}
	if !a.Birthday.IsZero() && a.MinorAt(congressStart) {
		if a.GuardianID == nil {
			add("guardian_id", "is required for attendees under 18")
		}
		if !asAdmin && !a.MinorAgreementReceived {
			add("minor_agreement_received", "must be accepted for attendees under 18")
		}
	}
	return errs
}

package models

import (
	"testing"
	"time"
)

var start = time.Date(2026, 7, 18, 0, 0, 0, 0, time.UTC)

func validAttendee() Attendee {
	return Attendee{
		GivenName:  "Kaoru",
		FamilyName: "Iwamoto",
		Gender:     "m",
		Birthday:   time.Date(1990, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAgeAt(t *testing.T) {
	a := Attendee{Birthday: time.Date(2010, 7, 19, 0, 0, 0, 0, time.UTC)}
	if got := a.AgeAt(start); got != 15 {
		t.Errorf("day before 16th birthday: got %d, want 15", got)
	}
	a.Birthday = time.Date(2010, 7, 18, 0, 0, 0, 0, time.UTC)
	if got := a.AgeAt(start); got != 16 {
		t.Errorf("on 16th birthday: got %d, want 16", got)
	}
}

func TestValidate(t *testing.T) {
	t.Run("ValidAdult", func(t *testing.T) {
		a := validAttendee()
		if errs := a.Validate(start, false); len(errs) != 0 {
			t.Errorf("expected no errors, got %v", errs)
		}
	})

	t.Run("MissingFields", func(t *testing.T) {
		a := Attendee{Gender: "q"}
		errs := a.Validate(start, false)
		for _, field := range []string{"given_name", "family_name", "birthday", "gender"} {
			if len(errs[field]) == 0 {
				t.Errorf("expected error on %s, got %v", field, errs)
			}
		}
	})

	t.Run("MinorNeedsGuardianAndAgreement", func(t *testing.T) {
		a := validAttendee()
		a.Birthday = time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC)
		errs := a.Validate(start, false)
		if len(errs["guardian_id"]) == 0 {
			t.Errorf("expected guardian error, got %v", errs)
		}
		if len(errs["minor_agreement_received"]) == 0 {
			t.Errorf("expected minor agreement error, got %v", errs)
		}
	})

	t.Run("AdminSkipsAgreementButNotGuardian", func(t *testing.T) {
		a := validAttendee()
		a.Birthday = time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC)
		errs := a.Validate(start, true)
		if len(errs["minor_agreement_received"]) != 0 {
			t.Errorf("admin submissions skip the agreement check, got %v", errs)
		}
		if len(errs["guardian_id"]) == 0 {
			t.Errorf("guardian is still required, got %v", errs)
		}
	})
}

func TestAttendeePlanValidate(t *testing.T) {
	t.Run("NonQuantifiableCapsAtOne", func(t *testing.T) {
		ap := AttendeePlan{Plan: Plan{Name: "Banquet"}, Quantity: 2}
		if errs := ap.Validate(); len(errs) != 1 {
			t.Errorf("expected one error, got %v", errs)
		}
	})

	t.Run("QuantifiableHonorsMaxQuantity", func(t *testing.T) {
		ap := AttendeePlan{Plan: Plan{Name: "T-shirt", Quantifiable: true, MaxQuantity: 5}, Quantity: 5}
		if errs := ap.Validate(); len(errs) != 0 {
			t.Errorf("expected no errors, got %v", errs)
		}
		ap.Quantity = 6
		if errs := ap.Validate(); len(errs) != 1 {
			t.Errorf("expected one error, got %v", errs)
		}
	})

	t.Run("DatePlanNeedsDates", func(t *testing.T) {
		ap := AttendeePlan{Plan: Plan{Name: "Dorm", NeedsDate: true, Quantifiable: true, MaxQuantity: 9}, Quantity: 2}
		if errs := ap.Validate(); len(errs) != 1 {
			t.Errorf("expected one error, got %v", errs)
		}
		ap.Dates = []AttendeePlanDate{{Date: start}, {Date: start.AddDate(0, 0, 1)}}
		if errs := ap.Validate(); len(errs) != 0 {
			t.Errorf("expected no errors, got %v", errs)
		}
	})

	t.Run("NegativeQuantity", func(t *testing.T) {
		ap := AttendeePlan{Plan: Plan{Name: "Banquet"}, Quantity: -1}
		if errs := ap.Validate(); len(errs) != 1 {
			t.Errorf("expected one error, got %v", errs)
		}
	})
}

func TestPlanEligibleFor(t *testing.T) {
	youth := Plan{AgeMin: 0, AgeMax: 17}
	adult := Plan{AgeMin: 18}
	if youth.EligibleFor(18) {
		t.Error("18 is too old for the youth plan")
	}
	if !youth.EligibleFor(17) {
		t.Error("17 fits the youth plan")
	}
	if adult.EligibleFor(17) {
		t.Error("17 is too young for the adult plan")
	}
	if !adult.EligibleFor(80) {
		t.Error("no upper bound on the adult plan")
	}
}

package registration

import (
	"strconv"
	"strings"
	"time"

	"github.com/gocongress/congress-api/internal/models"
)

// PlanInput is one raw form row for a plan, keyed by plan ID in the submitted
// map. Quantity arrives as a string straight from the form.
type PlanInput struct {
	Quantity string   `json:"quantity" doc:"Requested quantity, as submitted"`
	Dates    []string `json:"dates,omitempty" doc:"Chosen dates (YYYY-MM-DD) for date-based plans"`
}

// PlanSelection pairs a plan with a requested quantity and optional dates.
// It is built fresh per request and never persisted.
type PlanSelection struct {
	Plan     models.Plan
	Quantity int
	Dates    []time.Time
}

// Selected reports whether the selection actually requests the plan.
func (s PlanSelection) Selected() bool {
	return s.Quantity > 0
}

// SamePlan reports whether two selections refer to the same plan.
func (s PlanSelection) SamePlan(other PlanSelection) bool {
	return s.Plan.ID == other.Plan.ID
}

// ParsePlanParams converts raw form input into one selection per known plan,
// in catalog order. Missing or malformed quantities become 0 — a zero entry
// is kept because removal detection depends on seeing "was present, now
// zero". Unknown keys in raw are ignored. Never fails.
func ParsePlanParams(raw map[string]PlanInput, known []models.Plan) []PlanSelection {
	selections := make([]PlanSelection, 0, len(known))
	for _, plan := range known {
		sel := PlanSelection{Plan: plan}
		if input, ok := raw[strconv.FormatUint(uint64(plan.ID), 10)]; ok {
			sel.Quantity = parseQuantity(input.Quantity)
			if plan.NeedsDate {
				sel.Dates = parseDates(input.Dates)
			}
		}
		selections = append(selections, sel)
	}
	return selections
}

func parseQuantity(s string) int {
	qty, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return qty
}

func parseDates(raw []string) []time.Time {
	var dates []time.Time
	for _, s := range raw {
		if d, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err == nil {
			dates = append(dates, d)
		}
	}
	return dates
}

// SelectionsFromAttendeePlans builds the persisted counterpart of a parsed
// submission, for diffing against it. Plans must be preloaded.
func SelectionsFromAttendeePlans(plans []models.AttendeePlan) []PlanSelection {
	selections := make([]PlanSelection, 0, len(plans))
	for _, ap := range plans {
		sel := PlanSelection{Plan: ap.Plan, Quantity: ap.Quantity}
		for _, d := range ap.Dates {
			sel.Dates = append(sel.Dates, d.Date)
		}
		selections = append(selections, sel)
	}
	return selections
}

// ToAttendeePlan materializes the selection for the given attendee. Only
// meaningful for selected entries.
func (s PlanSelection) ToAttendeePlan(attendeeID uint) models.AttendeePlan {
	ap := models.AttendeePlan{
		AttendeeID: attendeeID,
		PlanID:     s.Plan.ID,
		Plan:       s.Plan,
		Quantity:   s.Quantity,
	}
	for _, d := range s.Dates {
		ap.Dates = append(ap.Dates, models.AttendeePlanDate{Date: d})
	}
	return ap
}

package registration

import (
	"github.com/gocongress/congress-api/internal/locale"
)

// DisabledPlanChanges compares a persisted selection set against a newly
// submitted one and reports changes that touch disabled plans. A plan that is
// disabled but whose selection status is unchanged is grandfathered and not
// an error. Only invoked for non-admin actors; admins bypass the rule.
func DisabledPlanChanges(before, after []PlanSelection, msgs *locale.Printer) (removals, additions []string) {
	selectedBefore := selectedPlans(before)
	selectedAfter := selectedPlans(after)

	for _, sel := range before {
		if !sel.Selected() || !sel.Plan.Disabled {
			continue
		}
		if _, still := selectedAfter[sel.Plan.ID]; !still {
			removals = append(removals, msgs.T(locale.KeyCannotRemoveDisabled, sel.Plan.Name))
		}
	}
	for _, sel := range after {
		if !sel.Selected() || !sel.Plan.Disabled {
			continue
		}
		if _, had := selectedBefore[sel.Plan.ID]; !had {
			additions = append(additions, msgs.T(locale.KeyCannotAddDisabled, sel.Plan.Name))
		}
	}
	return removals, additions
}

func selectedPlans(selections []PlanSelection) map[uint]struct{} {
	set := make(map[uint]struct{}, len(selections))
	for _, sel := range selections {
		if sel.Selected() {
			set[sel.Plan.ID] = struct{}{}
		}
	}
	return set
}

// DisabledActivityChangeOK reports whether an activity selection change
// leaves every disabled activity exactly as it was. disabled holds the IDs of
// currently disabled activities.
func DisabledActivityChangeOK(before, after []uint, disabled map[uint]bool) bool {
	beforeSet := idSet(before)
	afterSet := idSet(after)
	for id := range beforeSet {
		if disabled[id] && !afterSet[id] {
			return false
		}
	}
	for id := range afterSet {
		if disabled[id] && !beforeSet[id] {
			return false
		}
	}
	return true
}

func idSet(ids []uint) map[uint]bool {
	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

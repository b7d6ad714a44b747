package registration

import (
	"strings"
	"testing"

	"github.com/gocongress/congress-api/internal/locale"
	"github.com/gocongress/congress-api/internal/models"
	"pgregory.net/rapid"
)

func disabledPlan(id uint, name string) models.Plan {
	p := plan(id, name)
	p.Disabled = true
	return p
}

func TestDisabledPlanChanges(t *testing.T) {
	msgs := locale.NewPrinter("en")

	t.Run("RemovalOfDisabledPlanFlagged", func(t *testing.T) {
		before := []PlanSelection{{Plan: disabledPlan(1, "Early Entry"), Quantity: 1}}
		after := []PlanSelection{{Plan: disabledPlan(1, "Early Entry"), Quantity: 0}}
		removals, additions := DisabledPlanChanges(before, after, msgs)
		if len(removals) != 1 || len(additions) != 0 {
			t.Fatalf("expected 1 removal error, got %d/%d", len(removals), len(additions))
		}
		if !strings.Contains(removals[0], "Early Entry") {
			t.Errorf("error should name the plan: %q", removals[0])
		}
	})

	t.Run("AdditionOfDisabledPlanFlagged", func(t *testing.T) {
		before := []PlanSelection{{Plan: disabledPlan(1, "Early Entry"), Quantity: 0}}
		after := []PlanSelection{{Plan: disabledPlan(1, "Early Entry"), Quantity: 2}}
		removals, additions := DisabledPlanChanges(before, after, msgs)
		if len(removals) != 0 || len(additions) != 1 {
			t.Fatalf("expected 1 addition error, got %d/%d", len(removals), len(additions))
		}
	})

	t.Run("AbsentFromAfterCountsAsRemoval", func(t *testing.T) {
		before := []PlanSelection{{Plan: disabledPlan(1, "Early Entry"), Quantity: 1}}
		removals, _ := DisabledPlanChanges(before, nil, msgs)
		if len(removals) != 1 {
			t.Fatalf("expected 1 removal error, got %d", len(removals))
		}
	})

	t.Run("UnchangedDisabledPlanGrandfathered", func(t *testing.T) {
		before := []PlanSelection{{Plan: disabledPlan(1, "Early Entry"), Quantity: 1}}
		after := []PlanSelection{{Plan: disabledPlan(1, "Early Entry"), Quantity: 3}}
		removals, additions := DisabledPlanChanges(before, after, msgs)
		if len(removals) != 0 || len(additions) != 0 {
			t.Errorf("quantity change on a held disabled plan is not an error, got %v %v", removals, additions)
		}
	})

	t.Run("EnabledPlansNeverFlagged", func(t *testing.T) {
		before := []PlanSelection{{Plan: plan(1, "Banquet"), Quantity: 1}}
		after := []PlanSelection{{Plan: plan(2, "T-shirt"), Quantity: 1}}
		removals, additions := DisabledPlanChanges(before, after, msgs)
		if len(removals) != 0 || len(additions) != 0 {
			t.Errorf("expected no errors, got %v %v", removals, additions)
		}
	})
}

// Property: an error is produced exactly when a disabled plan's selection
// status flips between before and after.
func TestDisabledPlanChangesProperty(t *testing.T) {
	msgs := locale.NewPrinter("en")
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 8).Draw(t, "plans")

		var before, after []PlanSelection
		wantRemovals, wantAdditions := 0, 0
		for i := 0; i < n; i++ {
			p := plan(uint(i+1), "Plan")
			p.Disabled = rapid.Bool().Draw(t, "disabled")
			qb := rapid.IntRange(0, 3).Draw(t, "before_qty")
			qa := rapid.IntRange(0, 3).Draw(t, "after_qty")
			before = append(before, PlanSelection{Plan: p, Quantity: qb})
			after = append(after, PlanSelection{Plan: p, Quantity: qa})
			if p.Disabled && qb > 0 && qa == 0 {
				wantRemovals++
			}
			if p.Disabled && qb == 0 && qa > 0 {
				wantAdditions++
			}
		}

		removals, additions := DisabledPlanChanges(before, after, msgs)
		if len(removals) != wantRemovals {
			t.Fatalf("removals: got %d, want %d", len(removals), wantRemovals)
		}
		if len(additions) != wantAdditions {
			t.Fatalf("additions: got %d, want %d", len(additions), wantAdditions)
		}
	})
}

func TestDisabledActivityChangeOK(t *testing.T) {
	disabled := map[uint]bool{2: true}

	cases := []struct {
		name   string
		before []uint
		after  []uint
		ok     bool
	}{
		{"NoChange", []uint{1, 2}, []uint{1, 2}, true},
		{"EnabledChange", []uint{1}, []uint{3}, true},
		{"AddDisabled", []uint{1}, []uint{1, 2}, false},
		{"RemoveDisabled", []uint{1, 2}, []uint{1}, false},
		{"Empty", nil, nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DisabledActivityChangeOK(tc.before, tc.after, disabled); got != tc.ok {
				t.Errorf("got %v, want %v", got, tc.ok)
			}
		})
	}
}

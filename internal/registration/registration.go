// Package registration implements the multi-page registration workflow and
// plan-selection validation engine: it reconciles a submitted page against
// the year's plan catalog, enforces mandatory-category and disabled-item
// rules, and persists all of an attendee's selections in one transaction.
package registration

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gocongress/congress-api/internal/locale"
	"github.com/gocongress/congress-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlanCatalog supplies the year's offering. Implemented by the catalog
// package; tests may substitute their own.
type PlanCatalog interface {
	Plans(year int) ([]models.Plan, error)
	Categories(year int) ([]models.PlanCategory, error)
}

// Registration orchestrates one attendee's in-progress edits. It is built
// fresh per request; the only state between requests is what the attendee row
// and its associations already hold.
type Registration struct {
	db            *gorm.DB
	msgs          *locale.Printer
	attendee      *models.Attendee
	asAdmin       bool
	congressStart time.Time

	plans      []models.Plan         // known catalog for this attendee
	categories []models.PlanCategory // display order
	disabled   map[uint]bool         // disabled activity IDs for the year

	persistedSelections []PlanSelection
	persistedActivities []uint

	selections  []PlanSelection
	activityIDs []uint
	discounts   []models.Discount
	tournaments []models.Tournament

	errs Errors
}

// New loads everything validation needs up front so that Valid never touches
// the database.
func New(db *gorm.DB, catalog PlanCatalog, msgs *locale.Printer, attendee *models.Attendee, asAdmin bool, congressStart time.Time) (*Registration, error) {
	r := &Registration{
		db:            db,
		msgs:          msgs,
		attendee:      attendee,
		asAdmin:       asAdmin,
		congressStart: congressStart,
		errs:          Errors{},
	}

	all, err := catalog.Plans(attendee.Year)
	if err != nil {
		return nil, err
	}
	r.categories, err = catalog.Categories(attendee.Year)
	if err != nil {
		return nil, err
	}

	if attendee.ID != 0 {
		var existing []models.AttendeePlan
		if err := db.Preload("Plan").Preload("Dates").
			Where("attendee_id = ?", attendee.ID).Find(&existing).Error; err != nil {
			return nil, err
		}
		r.persistedSelections = SelectionsFromAttendeePlans(existing)

		var acts []models.Activity
		if err := db.Model(attendee).Association("Activities").Find(&acts); err != nil {
			return nil, err
		}
		for _, a := range acts {
			r.persistedActivities = append(r.persistedActivities, a.ID)
		}
	}

	held := selectedPlans(r.persistedSelections)
	age := -1
	if !attendee.Birthday.IsZero() {
		age = attendee.AgeAt(congressStart)
	}
	for _, p := range all {
		if _, ok := held[p.ID]; !ok && age >= 0 && !p.EligibleFor(age) {
			continue
		}
		r.plans = append(r.plans, p)
	}

	var disabledActs []models.Activity
	if err := db.Where("year = ? AND disabled = ?", attendee.Year, true).
		Find(&disabledActs).Error; err != nil {
		return nil, err
	}
	r.disabled = make(map[uint]bool, len(disabledActs))
	for _, a := range disabledActs {
		r.disabled[a.ID] = true
	}

	return r, nil
}

// SubmitParams is the explicit allow-list of everything a page submission may
// carry. Anything not named here cannot reach the attendee row.
type SubmitParams struct {
	Attendee      AttendeeParams
	Plans         map[string]PlanInput
	ActivityIDs   []uint
	DiscountIDs   []string
	TournamentIDs []uint
}

// AttendeeParams stages attendee attribute changes; nil means "not
// submitted, leave as is".
type AttendeeParams struct {
	GivenName              *string
	FamilyName             *string
	Email                  *string
	Phone                  *string
	Gender                 *string
	Birthday               *time.Time
	Country                *string
	Rank                   *int
	IsPlayer               *bool
	Anonymous              *bool
	GuardianID             *uint
	MinorAgreementReceived *bool

	// Admin-only; ignored for everyone else.
	Comment *string
}

func (p AttendeeParams) apply(a *models.Attendee, asAdmin bool) {
	if p.GivenName != nil {
		a.GivenName = *p.GivenName
	}
	if p.FamilyName != nil {
		a.FamilyName = *p.FamilyName
	}
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.Phone != nil {
		a.Phone = *p.Phone
	}
	if p.Gender != nil {
		a.Gender = *p.Gender
	}
	if p.Birthday != nil {
		a.Birthday = *p.Birthday
	}
	if p.Country != nil {
		a.Country = strings.ToUpper(*p.Country)
	}
	if p.Rank != nil {
		a.Rank = *p.Rank
	}
	if p.IsPlayer != nil {
		a.IsPlayer = *p.IsPlayer
	}
	if p.Anonymous != nil {
		a.Anonymous = *p.Anonymous
	}
	if p.GuardianID != nil {
		a.GuardianID = p.GuardianID
	}
	if p.MinorAgreementReceived != nil {
		a.MinorAgreementReceived = *p.MinorAgreementReceived
	}
	if asAdmin && p.Comment != nil {
		a.Comment = *p.Comment
	}
}

// Submit is the sole mutating entry point. It stages the submitted
// attributes and selections, validates everything, and on success persists
// the attendee and all association replacements atomically. ok=false means
// validation failed and Errors holds every problem; the staged attendee
// values remain visible for redisplay. A non-nil error is an infrastructure
// failure, expected to be rare once validation has passed.
func (r *Registration) Submit(params SubmitParams) (ok bool, err error) {
	params.Attendee.apply(r.attendee, r.asAdmin)
	r.selections = ParsePlanParams(params.Plans, r.plans)
	r.activityIDs = params.ActivityIDs
	if r.discounts, err = r.resolveDiscounts(params.DiscountIDs); err != nil {
		return false, err
	}
	if r.tournaments, err = r.resolveTournaments(params.TournamentIDs); err != nil {
		return false, err
	}

	if !r.Valid() {
		return false, nil
	}

	if err := r.persist(); err != nil {
		return false, err
	}

	// The saved state becomes the new baseline, so an identical resubmission
	// is a no-op rather than an append.
	r.persistedSelections = r.selections
	r.persistedActivities = r.activityIDs
	return true, nil
}

// Valid runs every check and accumulates all failures; no check
// short-circuits another, so a single submission surfaces every problem.
func (r *Registration) Valid() bool {
	r.errs = Errors{}

	r.errs.Merge(r.attendee.Validate(r.congressStart, r.asAdmin))
	if r.attendee.IsPlayer && !ValidRank(r.attendee.Rank) {
		r.errs.Add("rank", "is not a recognized rank")
	}

	r.checkMandatoryCategories()
	r.checkDisabledPlanChanges()
	r.checkPlanBounds()
	r.checkDisabledActivityChanges()

	return r.errs.Empty()
}

// Errors returns the messages accumulated by the last Valid run, keyed by
// field; business-rule errors live under BaseField.
func (r *Registration) Errors() Errors {
	return r.errs
}

func (r *Registration) Attendee() *models.Attendee {
	return r.attendee
}

// Admins must still respect mandatory categories; they are only exempt from
// the disabled-item rules.
func (r *Registration) checkMandatoryCategories() {
	for _, cat := range r.categories {
		if !cat.Mandatory {
			continue
		}
		found := false
		for _, sel := range r.selections {
			if sel.Selected() && sel.Plan.PlanCategoryID == cat.ID {
				found = true
				break
			}
		}
		if !found {
			r.errs.Add(BaseField, r.msgs.T(locale.KeyMandatoryPlanMissing, cat.Name))
		}
	}
}

func (r *Registration) checkDisabledPlanChanges() {
	if r.asAdmin {
		return
	}
	removals, additions := DisabledPlanChanges(r.persistedSelections, r.selections, r.msgs)
	for _, msg := range removals {
		r.errs.Add(BaseField, msg)
	}
	for _, msg := range additions {
		r.errs.Add(BaseField, msg)
	}
}

func (r *Registration) checkPlanBounds() {
	for _, sel := range r.selections {
		if !sel.Selected() {
			continue
		}
		ap := sel.ToAttendeePlan(r.attendee.ID)
		for _, msg := range ap.Validate() {
			r.errs.Add(BaseField, msg)
		}
	}
}

func (r *Registration) checkDisabledActivityChanges() {
	if r.asAdmin {
		return
	}
	if !DisabledActivityChangeOK(r.persistedActivities, r.activityIDs, r.disabled) {
		r.errs.Add(BaseField, r.msgs.T(locale.KeyActivityDisabled))
	}
}

// resolveDiscounts turns submitted discount IDs into rows. Empty strings and
// unparsable IDs are skipped, and automatic discounts are silently dropped
// for non-admins rather than rejected.
func (r *Registration) resolveDiscounts(ids []string) ([]models.Discount, error) {
	var numeric []uint
	for _, raw := range ids {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			continue
		}
		numeric = append(numeric, uint(id))
	}
	if len(numeric) == 0 {
		return nil, nil
	}
	var found []models.Discount
	if err := r.db.Where("id IN ?", numeric).Find(&found).Error; err != nil {
		return nil, err
	}
	var out []models.Discount
	for _, d := range found {
		if d.IsAutomatic && !r.asAdmin {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

// resolveTournaments loads the requested tournaments; closed tournaments are
// silently dropped for non-admins, mirroring the automatic-discount rule.
func (r *Registration) resolveTournaments(ids []uint) ([]models.Tournament, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []models.Tournament
	if err := r.db.Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, err
	}
	var out []models.Tournament
	for _, t := range found {
		if t.Openness == models.TournamentClosed && !r.asAdmin {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// persist writes the attendee row and wholesale-replaces every association
// inside one transaction; a half-committed plan/date state is never visible.
func (r *Registration) persist() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(r.attendee).Error; err != nil {
			return err
		}

		var acts []models.Activity
		if len(r.activityIDs) > 0 {
			if err := tx.Where("id IN ?", r.activityIDs).Find(&acts).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(r.attendee).Association("Activities").Replace(&acts); err != nil {
			return err
		}

		var stale []models.AttendeePlan
		if err := tx.Where("attendee_id = ?", r.attendee.ID).Find(&stale).Error; err != nil {
			return err
		}
		if len(stale) > 0 {
			staleIDs := make([]uint, len(stale))
			for i, ap := range stale {
				staleIDs[i] = ap.ID
			}
			if err := tx.Where("attendee_plan_id IN ?", staleIDs).
				Delete(&models.AttendeePlanDate{}).Error; err != nil {
				return err
			}
			if err := tx.Where("attendee_id = ?", r.attendee.ID).
				Delete(&models.AttendeePlan{}).Error; err != nil {
				return err
			}
		}
		for _, sel := range r.selections {
			if !sel.Selected() {
				continue
			}
			ap := sel.ToAttendeePlan(r.attendee.ID)
			if err := tx.Omit("Plan").Create(&ap).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(r.attendee).Association("Discounts").Replace(&r.discounts); err != nil {
			return err
		}
		if err := tx.Model(r.attendee).Association("Tournaments").Replace(&r.tournaments); err != nil {
			return err
		}
		return nil
	})
}

// CategoryPlans groups the visible plans of one category for rendering.
type CategoryPlans struct {
	Category models.PlanCategory `json:"category"`
	Plans    []models.Plan       `json:"plans"`
}

// PlansByCategory projects the catalog the attendee may actually see:
// enabled plans plus any disabled plan the attendee already holds,
// category-ordered.
func (r *Registration) PlansByCategory() []CategoryPlans {
	visible := r.visiblePlans()
	byCat := make(map[uint][]models.Plan)
	for _, p := range visible {
		byCat[p.PlanCategoryID] = append(byCat[p.PlanCategoryID], p)
	}

	cats := make([]models.PlanCategory, len(r.categories))
	copy(cats, r.categories)
	sort.SliceStable(cats, func(i, j int) bool { return cats[i].Ordinal < cats[j].Ordinal })

	var out []CategoryPlans
	for _, cat := range cats {
		plans := byCat[cat.ID]
		if len(plans) == 0 {
			continue
		}
		sort.SliceStable(plans, func(i, j int) bool { return plans[i].DisplayOrder < plans[j].DisplayOrder })
		out = append(out, CategoryPlans{Category: cat, Plans: plans})
	}
	return out
}

func (r *Registration) visiblePlans() []models.Plan {
	held := selectedPlans(r.persistedSelections)
	var out []models.Plan
	for _, p := range r.plans {
		if p.Disabled {
			if _, ok := held[p.ID]; !ok {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// ShowAvailability reports whether any visible plan advertises remaining
// inventory, driving an availability column in the form.
func (r *Registration) ShowAvailability() bool {
	for _, p := range r.visiblePlans() {
		if p.InventoryLimited {
			return true
		}
	}
	return false
}

// ShowQuantityInstructions reports whether any visible plan accepts a
// quantity above one.
func (r *Registration) ShowQuantityInstructions() bool {
	for _, p := range r.visiblePlans() {
		if p.Quantifiable {
			return true
		}
	}
	return false
}

// AttendeeNumber is the 1-based ordinal of this attendee among the owning
// account's attendees. Display only, never persisted.
func (r *Registration) AttendeeNumber() (int, error) {
	var count int64
	q := r.db.Model(&models.Attendee{}).Where("user_id = ?", r.attendee.UserID)
	if r.attendee.ID != 0 {
		q = q.Where("id < ?", r.attendee.ID)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count) + 1, nil
}

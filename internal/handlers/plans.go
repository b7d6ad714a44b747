package handlers

import (
	"context"
	"log"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gocongress/congress-api/internal/auth"
	"github.com/gocongress/congress-api/internal/locale"
	"github.com/gocongress/congress-api/internal/models"
	"github.com/gocongress/congress-api/internal/registration"
)

// AttendeeBody is the allow-listed attendee attribute mapping a plans-page
// submission may carry; nil fields are left untouched.
type AttendeeBody struct {
	GivenName  *string    `json:"given_name,omitempty"`
	FamilyName *string    `json:"family_name,omitempty"`
	Email      *string    `json:"email,omitempty"`
	Phone      *string    `json:"phone,omitempty"`
	Gender     *string    `json:"gender,omitempty"`
	Birthday   *time.Time `json:"birthday,omitempty"`
	Country    *string    `json:"country,omitempty"`
	Rank       *int       `json:"rank,omitempty"`
	IsPlayer   *bool      `json:"is_player,omitempty"`
	Anonymous  *bool      `json:"anonymous,omitempty"`
	GuardianID *uint      `json:"guardian_id,omitempty"`
	Comment    *string    `json:"comment,omitempty" doc:"Admin-only note"`

	MinorAgreementReceived *bool `json:"minor_agreement_received,omitempty"`
}

func (b AttendeeBody) params() registration.AttendeeParams {
	return registration.AttendeeParams{
		GivenName:              b.GivenName,
		FamilyName:             b.FamilyName,
		Email:                  b.Email,
		Phone:                  b.Phone,
		Gender:                 b.Gender,
		Birthday:               b.Birthday,
		Country:                b.Country,
		Rank:                   b.Rank,
		IsPlayer:               b.IsPlayer,
		Anonymous:              b.Anonymous,
		GuardianID:             b.GuardianID,
		MinorAgreementReceived: b.MinorAgreementReceived,
		Comment:                b.Comment,
	}
}

type UpdatePlansRequest struct {
	auth.AuthInput
	ID             uint   `path:"id"`
	AcceptLanguage string `header:"Accept-Language" doc:"Preferred language for error messages"`
	Body           struct {
		Page          string                            `json:"page,omitempty" doc:"Current page identifier, for navigation"`
		Registration  AttendeeBody                      `json:"registration,omitempty"`
		Plans         map[string]registration.PlanInput `json:"plans,omitempty" doc:"Plan rows keyed by plan ID"`
		ActivityIDs   []uint                            `json:"activity_ids,omitempty"`
		DiscountIDs   []string                          `json:"discount_ids,omitempty"`
		TournamentIDs []uint                            `json:"tournament_ids,omitempty"`
	}
}

type UpdatePlansResponse struct {
	Status int
	Body   struct {
		Saved    bool                `json:"saved"`
		NextPage string              `json:"next_page,omitempty"`
		Errors   map[string][]string `json:"errors,omitempty"`
	}
}

// HandleUpdatePlans is the multi-page flow's sole mutating endpoint. On
// validation failure the attempted values and every accumulated error go
// back for redisplay; on success the response names the next page.
func (h *AttendeeHandler) HandleUpdatePlans(ctx context.Context, input *UpdatePlansRequest) (*UpdatePlansResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}
	attendee, err := h.loadOwnAttendee(user, input.ID)
	if err != nil {
		return nil, err
	}

	msgs := locale.NewPrinter(input.AcceptLanguage, h.cfg.DefaultLanguage)
	reg, err := registration.New(h.db, h.catalog, msgs, attendee, user.IsAdmin, h.cfg.CongressStart())
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load registration: " + err.Error())
	}

	params := registration.SubmitParams{
		Attendee:      input.Body.Registration.params(),
		Plans:         input.Body.Plans,
		ActivityIDs:   input.Body.ActivityIDs,
		DiscountIDs:   input.Body.DiscountIDs,
		TournamentIDs: input.Body.TournamentIDs,
	}

	ok, err := reg.Submit(params)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to process registration: " + err.Error())
	}

	res := &UpdatePlansResponse{}
	if !ok {
		res.Status = 422
		res.Body.Errors = reg.Errors()
		return res, nil
	}

	cats, err := h.catalog.Categories(attendee.Year)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load categories: " + err.Error())
	}
	process := registration.NewProcess(cats, attendee.IsPlayer)
	page := input.Body.Page
	if page == "" {
		page = registration.PageBasics
	}

	res.Status = 200
	res.Body.Saved = true
	res.Body.NextPage = process.NextPage(page)

	if h.notifier != nil {
		planCount := 0
		var count int64
		if err := h.db.Model(&models.AttendeePlan{}).
			Where("attendee_id = ?", attendee.ID).Count(&count).Error; err == nil {
			planCount = int(count)
		}
		if err := h.notifier.NotifyRegistration(*user, *attendee, planCount); err != nil {
			log.Printf("Failed to send notification: %v", err)
			// Registration is saved; a lost notification is not worth a 500.
		}
	}

	return res, nil
}

type GetPlansRequest struct {
	auth.AuthInput
	ID uint `path:"id"`
}

type GetPlansResponse struct {
	Body struct {
		Categories               []registration.CategoryPlans `json:"categories"`
		ShowAvailability         bool                         `json:"show_availability"`
		ShowQuantityInstructions bool                         `json:"show_quantity_instructions"`
		AttendeeNumber           int                          `json:"attendee_number"`
	}
}

// HandleGetPlans serves the plan-selection page's data: the catalog the
// attendee may see, grouped by category.
func (h *AttendeeHandler) HandleGetPlans(ctx context.Context, input *GetPlansRequest) (*GetPlansResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}
	attendee, err := h.loadOwnAttendee(user, input.ID)
	if err != nil {
		return nil, err
	}

	msgs := locale.NewPrinter(h.cfg.DefaultLanguage)
	reg, err := registration.New(h.db, h.catalog, msgs, attendee, user.IsAdmin, h.cfg.CongressStart())
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load registration: " + err.Error())
	}

	number, err := reg.AttendeeNumber()
	if err != nil {
		return nil, huma.Error500InternalServerError("Database error: " + err.Error())
	}

	res := &GetPlansResponse{}
	res.Body.Categories = reg.PlansByCategory()
	res.Body.ShowAvailability = reg.ShowAvailability()
	res.Body.ShowQuantityInstructions = reg.ShowQuantityInstructions()
	res.Body.AttendeeNumber = number
	return res, nil
}

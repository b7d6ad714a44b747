package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gocongress/congress-api/internal/auth"
	"github.com/gocongress/congress-api/internal/catalog"
	"github.com/gocongress/congress-api/internal/config"
	"github.com/gocongress/congress-api/internal/models"
	"github.com/gocongress/congress-api/internal/notifier"
	"gorm.io/gorm"
)

type AttendeeHandler struct {
	db          *gorm.DB
	catalog     *catalog.Catalog
	notifier    notifier.Notifier
	authHandler *auth.AuthHandler
	cfg         *config.Config
}

func NewAttendeeHandler(db *gorm.DB, cat *catalog.Catalog, n notifier.Notifier, authHandler *auth.AuthHandler, cfg *config.Config) *AttendeeHandler {
	return &AttendeeHandler{db: db, catalog: cat, notifier: n, authHandler: authHandler, cfg: cfg}
}

// loadOwnAttendee fetches the attendee and enforces ownership: users see
// their own attendees, admins see everyone's.
func (h *AttendeeHandler) loadOwnAttendee(user *models.User, id uint) (*models.Attendee, error) {
	var attendee models.Attendee
	if err := h.db.First(&attendee, id).Error; err != nil {
		return nil, huma.Error404NotFound("Attendee not found")
	}
	if attendee.UserID != user.ID && !user.IsAdmin {
		return nil, huma.Error403Forbidden("Access denied")
	}
	return &attendee, nil
}

type CreateAttendeeRequest struct {
	auth.AuthInput
	Body struct {
		GivenName  string     `json:"given_name" doc:"Given name" required:"true"`
		FamilyName string     `json:"family_name" doc:"Family name" required:"true"`
		Email      string     `json:"email,omitempty" doc:"Contact email"`
		Phone      string     `json:"phone,omitempty" doc:"Contact phone"`
		Gender     string     `json:"gender" doc:"m or f" required:"true"`
		Birthday   time.Time  `json:"birthday" doc:"Date of birth" required:"true"`
		Country    string     `json:"country,omitempty" doc:"2-letter country code"`
		Rank       int        `json:"rank,omitempty" doc:"Numeric rank code"`
		IsPlayer   bool       `json:"is_player,omitempty" doc:"Will play in tournaments"`
		Anonymous  bool       `json:"anonymous,omitempty" doc:"Hide from public attendee list"`
		GuardianID *uint      `json:"guardian_id,omitempty" doc:"Guardian attendee ID, required for minors"`

		MinorAgreementReceived bool `json:"minor_agreement_received,omitempty" doc:"Minor agreement accepted"`
	}
}

type CreateAttendeeResponse struct {
	Status int
	Body   struct {
		ID             uint                `json:"id,omitempty"`
		AttendeeNumber int                 `json:"attendee_number,omitempty"`
		Errors         map[string][]string `json:"errors,omitempty"`
	}
}

func (h *AttendeeHandler) HandleCreateAttendee(ctx context.Context, input *CreateAttendeeRequest) (*CreateAttendeeResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	attendee := models.Attendee{
		UserID:                 user.ID,
		Year:                   h.cfg.CongressYear,
		GivenName:              input.Body.GivenName,
		FamilyName:             input.Body.FamilyName,
		Email:                  input.Body.Email,
		Phone:                  input.Body.Phone,
		Gender:                 input.Body.Gender,
		Birthday:               input.Body.Birthday,
		Country:                input.Body.Country,
		Rank:                   input.Body.Rank,
		IsPlayer:               input.Body.IsPlayer,
		Anonymous:              input.Body.Anonymous,
		GuardianID:             input.Body.GuardianID,
		MinorAgreementReceived: input.Body.MinorAgreementReceived,
	}

	var existing int64
	if err := h.db.Model(&models.Attendee{}).
		Where("user_id = ? AND year = ?", user.ID, h.cfg.CongressYear).
		Count(&existing).Error; err != nil {
		return nil, huma.Error500InternalServerError("Database error: " + err.Error())
	}
	attendee.IsPrimary = existing == 0

	res := &CreateAttendeeResponse{}
	if errs := attendee.Validate(h.cfg.CongressStart(), user.IsAdmin); len(errs) > 0 {
		res.Status = 422
		res.Body.Errors = errs
		return res, nil
	}

	if err := h.db.Create(&attendee).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create attendee: " + err.Error())
	}

	res.Status = 201
	res.Body.ID = attendee.ID
	res.Body.AttendeeNumber = int(existing) + 1
	return res, nil
}

type DeleteAttendeeRequest struct {
	auth.AuthInput
	ID uint `path:"id"`
}

type DeleteAttendeeResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

// HandleDeleteAttendee removes the attendee and cascades its plan, activity,
// discount and tournament links in one transaction.
func (h *AttendeeHandler) HandleDeleteAttendee(ctx context.Context, input *DeleteAttendeeRequest) (*DeleteAttendeeResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}
	attendee, err := h.loadOwnAttendee(user, input.ID)
	if err != nil {
		return nil, err
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		var plans []models.AttendeePlan
		if err := tx.Where("attendee_id = ?", attendee.ID).Find(&plans).Error; err != nil {
			return err
		}
		for _, ap := range plans {
			if err := tx.Where("attendee_plan_id = ?", ap.ID).
				Delete(&models.AttendeePlanDate{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("attendee_id = ?", attendee.ID).
			Delete(&models.AttendeePlan{}).Error; err != nil {
			return err
		}
		for _, assoc := range []string{"Activities", "Discounts", "Tournaments"} {
			if err := tx.Model(attendee).Association(assoc).Clear(); err != nil {
				return err
			}
		}
		return tx.Delete(attendee).Error
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to delete attendee: " + err.Error())
	}

	res := &DeleteAttendeeResponse{}
	res.Body.Message = "Attendee deleted"
	return res, nil
}

type ListAttendeesRequest struct {
	auth.AuthInput
}

type ListAttendeesResponse struct {
	Body struct {
		Attendees []models.Attendee `json:"attendees"`
	}
}

// HandleListAttendees returns the caller's attendees; admins get the whole
// year.
func (h *AttendeeHandler) HandleListAttendees(ctx context.Context, input *ListAttendeesRequest) (*ListAttendeesResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	q := h.db.Where("year = ?", h.cfg.CongressYear)
	if !user.IsAdmin {
		q = q.Where("user_id = ?", user.ID)
	}

	res := &ListAttendeesResponse{}
	if err := q.Order("id").Find(&res.Body.Attendees).Error; err != nil {
		return nil, huma.Error500InternalServerError("Database error: " + err.Error())
	}
	return res, nil
}

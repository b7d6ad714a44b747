package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gocongress/congress-api/internal/auth"
	"github.com/gocongress/congress-api/internal/models"
)

type CreateAPIKeyRequest struct {
	auth.AuthInput
	Body struct {
		Name          string `json:"name" doc:"Label for the key" required:"true"`
		ExpiresInDays int    `json:"expires_in_days,omitempty" doc:"0 means no expiry"`
	}
}

type CreateAPIKeyResponse struct {
	Body struct {
		Key       string     `json:"key"`
		ExpiresAt *time.Time `json:"expires_at,omitempty"`
	}
}

func (h *AttendeeHandler) HandleCreateAPIKey(ctx context.Context, input *CreateAPIKeyRequest) (*CreateAPIKeyResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	var expiresAt *time.Time
	if input.Body.ExpiresInDays > 0 {
		t := time.Now().AddDate(0, 0, input.Body.ExpiresInDays)
		expiresAt = &t
	}

	key := models.NewAPIKey(user.ID, input.Body.Name, expiresAt)
	if err := h.db.Create(&key).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create API key: " + err.Error())
	}

	res := &CreateAPIKeyResponse{}
	res.Body.Key = key.Key
	res.Body.ExpiresAt = key.ExpiresAt
	return res, nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type APIKey struct {
	gorm.Model
	UserID     uint       `json:"user_id"`
	User       User       `json:"user"`
	Key        string     `json:"key" gorm:"uniqueIndex"`
	Name       string     `json:"name"`
	ExpiresAt  *time.Time `json:"expires_at"`
	LastUsedAt *time.Time `json:"last_used_at"`
}

// NewAPIKey mints a key for the user with a random opaque value.
func NewAPIKey(userID uint, name string, expiresAt *time.Time) APIKey {
	return APIKey{
		UserID:    userID,
		Key:       uuid.NewString(),
		Name:      name,
		ExpiresAt: expiresAt,
	}
}

package auth

import (
	"context"
	"testing"

	"github.com/gocongress/congress-api/internal/config"
	"github.com/gocongress/congress-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestHandleMe(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	db.AutoMigrate(&models.User{})

	user := models.User{
		DiscordID: "123456",
		Username:  "testuser",
		Email:     "test@example.com",
		Avatar:    "avatar_url",
		IsAdmin:   true,
	}
	db.Create(&user)

	cfg := &config.Config{JWTSecret: "test-secret"}
	handler := NewAuthHandler(cfg, db)

	t.Run("Authenticated", func(t *testing.T) {
		token, _ := handler.GenerateToken(user.ID)
		input := &AuthInput{
			Cookie: "auth_token=" + token,
		}
		resp, err := handler.HandleMe(context.Background(), input)
		if err != nil {
			t.Fatalf("HandleMe returned error: %v", err)
		}

		if resp.Body.Username != user.Username {
			t.Errorf("expected username %s, got %s", user.Username, resp.Body.Username)
		}
		if !resp.Body.IsAdmin {
			t.Error("expected admin flag to be exposed")
		}
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		input := &AuthInput{}
		_, err := handler.HandleMe(context.Background(), input)
		if err == nil {
			t.Fatal("expected error for unauthenticated request, got nil")
		}
	})

	t.Run("TamperedToken", func(t *testing.T) {
		token, _ := handler.GenerateToken(user.ID)
		input := &AuthInput{
			Cookie: "auth_token=" + token + "x",
		}
		if _, err := handler.HandleMe(context.Background(), input); err == nil {
			t.Fatal("expected error for tampered token, got nil")
		}
	})
}

func TestAuthorize(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	handler := NewAuthHandler(cfg, nil)

	token, err := handler.GenerateToken(7)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	userID, err := handler.Authorize(context.Background(), "auth_token="+token)
	if err != nil {
		t.Fatalf("Authorize returned error: %v", err)
	}
	if userID != 7 {
		t.Errorf("expected user 7, got %d", userID)
	}

	if _, err := handler.Authorize(context.Background(), ""); err == nil {
		t.Fatal("expected error for missing cookie")
	}
}

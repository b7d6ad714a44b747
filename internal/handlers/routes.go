package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/gocongress/congress-api/internal/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r *chi.Mux, authHandler *auth.AuthHandler, attendeeHandler *AttendeeHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Congress Registration API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: "auth_token",
		},
	}
	api := humachi.New(r, config)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Auth routes
	r.Get("/auth/discord/login", authHandler.HandleLogin)
	r.Get("/auth/discord/callback", authHandler.HandleCallback)

	cookieSecured := func(o *huma.Operation) {
		o.Security = []map[string][]string{{"cookieAuth": {}}}
	}

	huma.Get(api, "/ranks", attendeeHandler.HandleListRanks)
	huma.Get(api, "/me", authHandler.HandleMe, cookieSecured)
	huma.Post(api, "/api-keys", attendeeHandler.HandleCreateAPIKey, cookieSecured)

	huma.Get(api, "/attendees", attendeeHandler.HandleListAttendees, cookieSecured)
	huma.Post(api, "/attendees", attendeeHandler.HandleCreateAttendee, cookieSecured)
	huma.Delete(api, "/attendees/{id}", attendeeHandler.HandleDeleteAttendee, cookieSecured)
	huma.Get(api, "/attendees/{id}/plans", attendeeHandler.HandleGetPlans, cookieSecured)
	huma.Put(api, "/attendees/{id}/plans", attendeeHandler.HandleUpdatePlans, cookieSecured)

	// Admin exports use plain handlers behind the session middleware
	r.Group(func(r chi.Router) {
		r.Use(authHandler.AuthMiddleware)
		r.Get("/export/attendees.csv", attendeeHandler.HandleExportAttendees)
	})
}

package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/gocongress/congress-api/internal/auth"
	"github.com/gocongress/congress-api/internal/models"
	"github.com/gocongress/congress-api/internal/registration"
)

// HandleExportAttendees streams the year's attendee list as CSV. Plain chi
// handler behind AuthMiddleware; admins only.
func (h *AttendeeHandler) HandleExportAttendees(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(uint)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil || !user.IsAdmin {
		http.Error(w, "Access denied", http.StatusForbidden)
		return
	}

	var attendees []models.Attendee
	if err := h.db.Where("year = ?", h.cfg.CongressYear).Order("id").
		Find(&attendees).Error; err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=attendees.csv")

	cw := csv.NewWriter(w)
	cw.Write([]string{"id", "family_name", "given_name", "country", "rank", "minor", "comment"})
	start := h.cfg.CongressStart()
	for _, a := range attendees {
		rank, _ := registration.RankName(a.Rank)
		minor := ""
		if !a.Birthday.IsZero() && a.MinorAt(start) {
			minor = "yes"
		}
		cw.Write([]string{
			fmt.Sprint(a.ID),
			a.FamilyName,
			a.GivenName,
			a.Country,
			rank,
			minor,
			a.Comment,
		})
	}
	cw.Flush()
}

package handlers

import (
	"context"

	"github.com/gocongress/congress-api/internal/registration"
)

type RankEntry struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

type ListRanksResponse struct {
	Body struct {
		Ranks []RankEntry `json:"ranks"`
	}
}

// HandleListRanks serves the rank dropdown, strongest first.
func (h *AttendeeHandler) HandleListRanks(ctx context.Context, _ *struct{}) (*ListRanksResponse, error) {
	res := &ListRanksResponse{}
	for _, code := range registration.RankCodes() {
		name, _ := registration.RankName(code)
		res.Body.Ranks = append(res.Body.Ranks, RankEntry{Code: code, Name: name})
	}
	return res, nil
}

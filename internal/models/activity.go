package models

import (
	"time"

	"gorm.io/gorm"
)

type Activity struct {
	gorm.Model
	Name       string    `json:"name"`
	Year       int       `json:"year" gorm:"index"`
	Date       time.Time `json:"date"`
	Location   string    `json:"location"`
	PriceCents int       `json:"price_cents"`
	Disabled   bool      `json:"disabled"`
}

// Tournament openness codes.
const (
	TournamentOpen   = "O" // anyone may enter
	TournamentClosed = "C" // invitation or qualification required
)

type Tournament struct {
	gorm.Model
	Name     string `json:"name"`
	Year     int    `json:"year" gorm:"index"`
	Openness string `json:"openness" gorm:"size:1"`
}

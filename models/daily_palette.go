package models

import "time"

// DailyPalette is the featured palette of the day, derived from one base
// color and a harmony rule.
type DailyPalette struct {
	ID        int       `json:"id"`
	Date      time.Time `json:"date"`
	BaseHex   string    `json:"base_hex"`
	Rule      string    `json:"rule"`
	Colors    []string  `json:"colors"`
	CreatedAt time.Time `json:"created_at"`
}

// DailyPaletteResponse is the simplified response for API endpoints.
type DailyPaletteResponse struct {
	Date    string   `json:"date"`
	BaseHex string   `json:"base_hex"`
	Rule    string   `json:"rule"`
	Colors  []string `json:"colors"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Palette is a user-saved, named ordered list of hex colors.
type Palette struct {
	PaletteID string    `json:"paletteId" db:"palette_id"`
	UserID    string    `json:"userId" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Colors    []string  `json:"colors" db:"colors"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type PaletteCreateRequest struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

// NewPalette stamps a create request with an ID and timestamps.
func NewPalette(userID string, req PaletteCreateRequest) Palette {
	now := time.Now()
	return Palette{
		PaletteID: uuid.New().String(),
		UserID:    userID,
		Name:      req.Name,
		Colors:    req.Colors,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

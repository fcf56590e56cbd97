package datastore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/jsversehub/colorapi/models"
)

type PaletteRepository interface {
	Create(palette models.Palette) (models.Palette, error)
	Get(paletteID string) (models.Palette, error)
	GetByUser(userID string) ([]models.Palette, error)
	GetByUserAndName(userID string, name string) (models.Palette, error)
	Update(palette models.Palette) (models.Palette, error)
	Delete(paletteID string) error
}

type PaletteDatabase struct {
	database *sql.DB
}

func NewPaletteDatabase(db *sql.DB) (PaletteDatabase, error) {
	var paletteDB PaletteDatabase
	paletteDB.database = db
	return paletteDB, nil
}

// Create inserts a new saved palette. Colors are stored as a JSON array.
func (pdb PaletteDatabase) Create(palette models.Palette) (models.Palette, error) {
	db := pdb.database

	colorsJSON, err := json.Marshal(palette.Colors)
	if err != nil {
		return models.Palette{}, fmt.Errorf("failed to serialize palette colors: %v", err)
	}

	sqlStatement := `
		INSERT INTO palettes (palette_id, user_id, name, colors, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, insertErr := db.Exec(
		sqlStatement,
		palette.PaletteID,
		palette.UserID,
		palette.Name,
		colorsJSON,
		palette.CreatedAt,
		palette.UpdatedAt,
	)

	if insertErr != nil {
		return models.Palette{}, fmt.Errorf("failed to create palette: %v", insertErr)
	}

	return palette, nil
}

// Get retrieves a saved palette by ID
func (pdb PaletteDatabase) Get(paletteID string) (models.Palette, error) {
	db := pdb.database

	sqlStatement := `
		SELECT palette_id, user_id, name, colors, created_at, updated_at
		FROM palettes
		WHERE palette_id = $1`

	return scanPalette(db.QueryRow(sqlStatement, paletteID))
}

// GetByUser retrieves all palettes saved by a user, newest first
func (pdb PaletteDatabase) GetByUser(userID string) ([]models.Palette, error) {
	db := pdb.database

	sqlStatement := `
		SELECT palette_id, user_id, name, colors, created_at, updated_at
		FROM palettes
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := db.Query(sqlStatement, userID)
	if err != nil {
		return []models.Palette{}, err
	}
	defer rows.Close()

	var palettes []models.Palette
	for rows.Next() {
		var palette models.Palette
		var colorsJSON []byte
		scanErr := rows.Scan(
			&palette.PaletteID,
			&palette.UserID,
			&palette.Name,
			&colorsJSON,
			&palette.CreatedAt,
			&palette.UpdatedAt,
		)
		if scanErr != nil {
			return []models.Palette{}, scanErr
		}
		if err := json.Unmarshal(colorsJSON, &palette.Colors); err != nil {
			return []models.Palette{}, fmt.Errorf("failed to parse palette colors: %v", err)
		}
		palettes = append(palettes, palette)
	}
	if rows.Err() != nil {
		return []models.Palette{}, rows.Err()
	}

	return palettes, nil
}

// GetByUserAndName retrieves one of a user's palettes by its name
func (pdb PaletteDatabase) GetByUserAndName(userID string, name string) (models.Palette, error) {
	db := pdb.database

	sqlStatement := `
		SELECT palette_id, user_id, name, colors, created_at, updated_at
		FROM palettes
		WHERE user_id = $1 AND name = $2`

	return scanPalette(db.QueryRow(sqlStatement, userID, name))
}

// Update replaces a palette's name and colors
func (pdb PaletteDatabase) Update(palette models.Palette) (models.Palette, error) {
	db := pdb.database

	colorsJSON, err := json.Marshal(palette.Colors)
	if err != nil {
		return models.Palette{}, fmt.Errorf("failed to serialize palette colors: %v", err)
	}

	sqlStatement := `
		UPDATE palettes
		SET name = $2, colors = $3, updated_at = $4
		WHERE palette_id = $1`

	_, updateErr := db.Exec(sqlStatement, palette.PaletteID, palette.Name, colorsJSON, time.Now())
	if updateErr != nil {
		return models.Palette{}, fmt.Errorf("error updating palette %v", updateErr)
	}

	return palette, nil
}

// Delete removes a saved palette by ID
func (pdb PaletteDatabase) Delete(paletteID string) error {
	db := pdb.database

	sqlStatement := `DELETE FROM palettes WHERE palette_id = $1`
	_, err := db.Exec(sqlStatement, paletteID)

	return err
}

func scanPalette(row *sql.Row) (models.Palette, error) {
	var palette models.Palette
	var colorsJSON []byte

	scanErr := row.Scan(
		&palette.PaletteID,
		&palette.UserID,
		&palette.Name,
		&colorsJSON,
		&palette.CreatedAt,
		&palette.UpdatedAt,
	)

	switch scanErr {
	case sql.ErrNoRows:
		return models.Palette{}, NoRowsError{true, scanErr}
	case nil:
		if err := json.Unmarshal(colorsJSON, &palette.Colors); err != nil {
			return models.Palette{}, fmt.Errorf("failed to parse palette colors: %v", err)
		}
		return palette, nil
	default:
		return models.Palette{}, scanErr
	}
}

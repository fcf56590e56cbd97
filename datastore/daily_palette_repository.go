package datastore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/jsversehub/colorapi/models"
)

type DailyPaletteRepository interface {
	Create(dailyPalette models.DailyPalette) (models.DailyPalette, error)
	GetByDate(date time.Time) (models.DailyPalette, error)
	GetToday() (models.DailyPalette, error)
	GetAll() ([]models.DailyPalette, error)
	Delete(id int) error
}

type DailyPaletteDatabase struct {
	database *sql.DB
}

func NewDailyPaletteDatabase(db *sql.DB) (DailyPaletteDatabase, error) {
	var dailyPaletteDB DailyPaletteDatabase
	dailyPaletteDB.database = db
	return dailyPaletteDB, nil
}

// Create inserts a new daily palette into the database
func (dpdb DailyPaletteDatabase) Create(dailyPalette models.DailyPalette) (models.DailyPalette, error) {
	db := dpdb.database

	colorsJSON, err := json.Marshal(dailyPalette.Colors)
	if err != nil {
		return models.DailyPalette{}, fmt.Errorf("failed to serialize palette colors: %v", err)
	}

	sqlStatement := `
		INSERT INTO daily_palette (date, base_hex, rule, colors, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	insertErr := db.QueryRow(
		sqlStatement,
		dailyPalette.Date,
		dailyPalette.BaseHex,
		dailyPalette.Rule,
		colorsJSON,
		dailyPalette.CreatedAt,
	).Scan(&dailyPalette.ID)

	if insertErr != nil {
		return models.DailyPalette{}, fmt.Errorf("failed to create daily palette: %v", insertErr)
	}

	return dailyPalette, nil
}

// GetByDate retrieves a daily palette by date
func (dpdb DailyPaletteDatabase) GetByDate(date time.Time) (models.DailyPalette, error) {
	db := dpdb.database

	// Normalize date to start of day
	normalizedDate := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	sqlStatement := `
		SELECT id, date, base_hex, rule, colors, created_at
		FROM daily_palette
		WHERE date = $1`

	row := db.QueryRow(sqlStatement, normalizedDate)

	var dailyPalette models.DailyPalette
	var colorsJSON []byte
	err := row.Scan(
		&dailyPalette.ID,
		&dailyPalette.Date,
		&dailyPalette.BaseHex,
		&dailyPalette.Rule,
		&colorsJSON,
		&dailyPalette.CreatedAt,
	)

	switch err {
	case sql.ErrNoRows:
		return models.DailyPalette{}, NoRowsError{true, err}
	case nil:
		if err := json.Unmarshal(colorsJSON, &dailyPalette.Colors); err != nil {
			return models.DailyPalette{}, fmt.Errorf("failed to parse palette colors: %v", err)
		}
		return dailyPalette, nil
	default:
		return models.DailyPalette{}, err
	}
}

// GetToday retrieves today's daily palette
func (dpdb DailyPaletteDatabase) GetToday() (models.DailyPalette, error) {
	today := time.Now()
	return dpdb.GetByDate(today)
}

// GetAll retrieves all daily palettes
func (dpdb DailyPaletteDatabase) GetAll() ([]models.DailyPalette, error) {
	db := dpdb.database

	sqlStatement := `
		SELECT id, date, base_hex, rule, colors, created_at
		FROM daily_palette
		ORDER BY date DESC`

	rows, err := db.Query(sqlStatement)
	if err != nil {
		return []models.DailyPalette{}, err
	}
	defer rows.Close()

	var dailyPalettes []models.DailyPalette
	for rows.Next() {
		var dp models.DailyPalette
		var colorsJSON []byte
		err := rows.Scan(
			&dp.ID,
			&dp.Date,
			&dp.BaseHex,
			&dp.Rule,
			&colorsJSON,
			&dp.CreatedAt,
		)
		if err != nil {
			return []models.DailyPalette{}, err
		}
		if err := json.Unmarshal(colorsJSON, &dp.Colors); err != nil {
			return []models.DailyPalette{}, fmt.Errorf("failed to parse palette colors: %v", err)
		}
		dailyPalettes = append(dailyPalettes, dp)
	}

	if err = rows.Err(); err != nil {
		return []models.DailyPalette{}, err
	}

	return dailyPalettes, nil
}

// Delete removes a daily palette by ID
func (dpdb DailyPaletteDatabase) Delete(id int) error {
	db := dpdb.database

	sqlStatement := `DELETE FROM daily_palette WHERE id = $1`
	_, err := db.Exec(sqlStatement, id)

	return err
}

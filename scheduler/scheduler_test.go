package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsversehub/colorapi/colorspace"
	"github.com/jsversehub/colorapi/datastore"
	"github.com/jsversehub/colorapi/models"
)

type memoryDailyPaletteRepo struct {
	palettes []models.DailyPalette
	nextID   int
}

func (m *memoryDailyPaletteRepo) Create(dp models.DailyPalette) (models.DailyPalette, error) {
	m.nextID++
	dp.ID = m.nextID
	m.palettes = append(m.palettes, dp)
	return dp, nil
}

func (m *memoryDailyPaletteRepo) GetByDate(date time.Time) (models.DailyPalette, error) {
	normalized := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	for _, dp := range m.palettes {
		if dp.Date.Equal(normalized) {
			return dp, nil
		}
	}
	return models.DailyPalette{}, datastore.NoRowsError{NoRows: true}
}

func (m *memoryDailyPaletteRepo) GetToday() (models.DailyPalette, error) {
	return m.GetByDate(time.Now())
}

func (m *memoryDailyPaletteRepo) GetAll() ([]models.DailyPalette, error) {
	return m.palettes, nil
}

func (m *memoryDailyPaletteRepo) Delete(id int) error {
	return nil
}

func TestGenerateDailyPalette(t *testing.T) {
	repo := &memoryDailyPaletteRepo{}
	s := NewScheduler(repo, colorspace.NewRegistry())

	require.NoError(t, s.GenerateDailyPalette())
	require.Len(t, repo.palettes, 1)

	saved := repo.palettes[0]
	assert.Regexp(t, `^#[0-9a-f]{6}$`, saved.BaseHex)
	assert.Contains(t, colorspace.HarmonyRules, saved.Rule)
	assert.NotEmpty(t, saved.Colors)

	// Every generated color must itself be a valid hex color
	for _, c := range saved.Colors {
		_, err := colorspace.HexToRGB(c)
		assert.NoError(t, err, c)
	}
}

func TestGenerateDailyPaletteSkipsExisting(t *testing.T) {
	repo := &memoryDailyPaletteRepo{}
	s := NewScheduler(repo, colorspace.NewRegistry())

	require.NoError(t, s.GenerateDailyPalette())
	require.NoError(t, s.GenerateDailyPalette())

	assert.Len(t, repo.palettes, 1, "second run should not replace today's palette")
}

package scheduler

import (
	"log"
	"math/rand"
	"time"

	"github.com/jsversehub/colorapi/colorspace"
	"github.com/jsversehub/colorapi/datastore"
	"github.com/jsversehub/colorapi/models"
)

type Scheduler struct {
	DailyPaletteRepo datastore.DailyPaletteRepository
	Palettes         *colorspace.Registry
	ticker           *time.Ticker
	done             chan bool
}

func NewScheduler(repo datastore.DailyPaletteRepository, palettes *colorspace.Registry) *Scheduler {
	return &Scheduler{
		DailyPaletteRepo: repo,
		Palettes:         palettes,
		done:             make(chan bool),
	}
}

// Start begins the scheduler to run at midnight every day
func (s *Scheduler) Start() {
	// Calculate time until next midnight
	now := time.Now()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	durationUntilMidnight := nextMidnight.Sub(now)

	log.Printf("Scheduler started. Next daily palette generation in %v", durationUntilMidnight)

	// Wait until midnight, then generate first palette
	time.AfterFunc(durationUntilMidnight, func() {
		s.GenerateDailyPalette()

		// After first run, schedule to run every 24 hours
		s.ticker = time.NewTicker(24 * time.Hour)
		go func() {
			for {
				select {
				case <-s.ticker.C:
					s.GenerateDailyPalette()
				case <-s.done:
					return
				}
			}
		}()
	})
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	s.done <- true
	log.Println("Scheduler stopped")
}

// GenerateDailyPalette generates and saves a new daily palette
func (s *Scheduler) GenerateDailyPalette() error {
	log.Println("Generating daily palette...")

	// Check if today's palette already exists
	today := time.Now()
	normalizedToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	existingPalette, err := s.DailyPaletteRepo.GetByDate(normalizedToday)
	if err == nil && existingPalette.ID != 0 {
		log.Printf("Daily palette already exists for %s: %s (%s)",
			normalizedToday.Format("2006-01-02"), existingPalette.BaseHex, existingPalette.Rule)
		return nil
	}

	// Pick a uniform random base color and a harmony rule
	generated, genErr := colorspace.Generate(colorspace.GenerateOptions{}, s.Palettes)
	if genErr != nil {
		log.Printf("Error generating base color: %v", genErr)
		return genErr
	}

	rule := colorspace.HarmonyRules[rand.Intn(len(colorspace.HarmonyRules))]

	colors, schemeErr := colorspace.GenerateScheme(generated.Hex, rule, 0)
	if schemeErr != nil {
		log.Printf("Error generating scheme: %v", schemeErr)
		return schemeErr
	}

	// Create daily palette entry
	dailyPalette := models.DailyPalette{
		Date:      normalizedToday,
		BaseHex:   generated.Hex,
		Rule:      rule,
		Colors:    colors,
		CreatedAt: time.Now(),
	}

	// Save to database
	savedPalette, err := s.DailyPaletteRepo.Create(dailyPalette)
	if err != nil {
		log.Printf("Error saving daily palette to database: %v", err)
		return err
	}

	log.Printf("Successfully generated daily palette: %s via %s (%d colors) for %s",
		savedPalette.BaseHex, savedPalette.Rule, len(savedPalette.Colors),
		savedPalette.Date.Format("2006-01-02"))

	return nil
}

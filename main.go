package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/jsversehub/colorapi/api"
	"github.com/jsversehub/colorapi/colorspace"
	"github.com/jsversehub/colorapi/datastore"
	"github.com/jsversehub/colorapi/migrations"
	"github.com/jsversehub/colorapi/scheduler"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Get configuration from environment
	config := api.Config{
		HTTPPort:           getEnv("HTTP_PORT", ":8080"),
		DatabaseType:       getEnv("DB_TYPE", "postgres"),
		DatabaseUser:       getEnv("DB_USER", "postgres"),
		DatabasePassword:   getEnv("DB_PASSWORD", ""),
		DatabaseHost:       getEnv("DB_HOST", "localhost"),
		DatabaseName:       getEnv("DB_NAME", "colorhub"),
		SSLMode:            getEnv("SSL_MODE", "disable"),
		JwtSecret:          getEnv("JWT_SECRET", "your-secret-key-change-this"),
		JwtAccessDuration:  getEnvInt("JWT_ACCESS_DURATION", 900),     // 15 minutes
		JwtRefreshDuration: getEnvInt("JWT_REFRESH_DURATION", 604800), // 7 days
		JwtDomain:          getEnv("JWT_DOMAIN", ""),
		AllowedOrigins:     getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		DevMode:            getEnvBool("DEV_MODE", true),
	}

	// Create database connection
	connStr := datastore.BuildDBConnStr(
		config.DatabasePassword,
		config.DatabaseUser,
		config.DatabaseHost,
		config.DatabaseName,
		config.SSLMode,
	)

	dbConn, dbErr := datastore.NewDB(config.DatabaseType, connStr)
	if dbErr != nil {
		log.Fatalf("Failed to connect to database: %v", dbErr)
	}
	defer dbConn.Close()

	// Run database migrations
	fmt.Println("Running database migrations...")
	if err := migrations.RunMigrations(dbConn); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create user repository
	userRepo, userRepoErr := datastore.NewUserDatabase(dbConn)
	if userRepoErr != nil {
		log.Fatalf("Failed to create user repository: %v", userRepoErr)
	}

	// Create palette repository
	paletteRepo, paletteRepoErr := datastore.NewPaletteDatabase(dbConn)
	if paletteRepoErr != nil {
		log.Fatalf("Failed to create palette repository: %v", paletteRepoErr)
	}

	// Create daily palette repository
	dailyPaletteRepo, dailyPaletteRepoErr := datastore.NewDailyPaletteDatabase(dbConn)
	if dailyPaletteRepoErr != nil {
		log.Fatalf("Failed to create daily palette repository: %v", dailyPaletteRepoErr)
	}

	// Built-in palette registry shared by handlers and scheduler
	paletteRegistry := colorspace.NewRegistry()

	// Create application
	app := &api.Application{
		Config:           config,
		Palettes:         paletteRegistry,
		UserRepo:         userRepo,
		PaletteRepo:      paletteRepo,
		DailyPaletteRepo: dailyPaletteRepo,
	}

	// Start scheduler for daily palette generation
	paletteScheduler := scheduler.NewScheduler(dailyPaletteRepo, paletteRegistry)
	paletteScheduler.Start()

	// Create and start server
	mux := http.NewServeMux()

	fmt.Println("JSVerseHub Color API Starting...")
	if err := app.Serve(mux); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

func getEnvSlice(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	return strings.Split(value, ",")
}

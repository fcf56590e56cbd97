package api

import (
	"github.com/jsversehub/colorapi/colorspace"
	"github.com/jsversehub/colorapi/datastore"
)

type Config struct {
	HTTPPort           string
	DatabaseType       string
	DatabaseUser       string
	DatabasePassword   string
	DatabaseHost       string
	DatabaseName       string
	SSLMode            string
	JwtSecret          string
	JwtAccessDuration  int // seconds
	JwtRefreshDuration int // seconds
	JwtDomain          string
	AllowedOrigins     []string
	DevMode            bool
}

type Application struct {
	Config           Config
	Palettes         *colorspace.Registry
	UserRepo         datastore.UserRepository
	PaletteRepo      datastore.PaletteRepository
	DailyPaletteRepo datastore.DailyPaletteRepository
}

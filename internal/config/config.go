package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Server configures the category backend (cmd/server, cmd/dbtool).
type Server struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DBPath      string `env:"DB_PATH" envDefault:"data/app.db"`
	DatabaseURL string `env:"DATABASE_URL"`
	SeedPath    string `env:"SEED_PATH" envDefault:"data/seeds/markers.json"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// Viewer configures the map viewer (cmd/viewer).
type Viewer struct {
	APIBaseURL     string `env:"API_BASE_URL" envDefault:"http://localhost:8080"`
	GeolocationURL string `env:"GEOLOCATION_URL"`

	// "lat,lng"; when set it replaces the network lookup.
	Position string `env:"VIEWER_POSITION"`
	Lang     string `env:"VIEWER_LANG"`

	// TranslateProtocol is "google" or "plain", see adapters/translate.
	TranslateURL      string `env:"TRANSLATE_URL" envDefault:"https://translation.googleapis.com/language/translate/v2"`
	TranslateAPIKey   string `env:"TRANSLATE_API_KEY"`
	TranslateProtocol string `env:"TRANSLATE_PROTOCOL" envDefault:"google"`

	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	Headless    bool          `env:"VIEWER_HEADLESS"`
	LogFile     string        `env:"VIEWER_LOG_FILE" envDefault:"viewer.log"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file and then parses the environment into target.
// It reports whether a .env file was found.
func Load(target any) (bool, error) {
	found := true
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("load config: read .env: %w", err)
		}
		found = false
	}

	if err := env.Parse(target); err != nil {
		return found, fmt.Errorf("load config: parse env: %w", err)
	}
	return found, nil
}

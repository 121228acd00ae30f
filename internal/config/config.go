package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned when the required OpenWeather credential is
// absent. Startup fails fast instead of letting every upstream call fail
// authentication later.
var ErrMissingAPIKey = errors.New("OPENWEATHER_API_KEY is required")

type AppConfig struct {
	// OpenWeatherAPIKey authenticates the geocoding and One Call requests.
	OpenWeatherAPIKey string

	// DefaultQuery is the city searched when geolocation is unavailable.
	DefaultQuery string

	// GeoIPURL is the IP-geolocation endpoint; empty disables geolocation.
	GeoIPURL string

	// HTTPTimeout bounds each outbound request.
	HTTPTimeout time.Duration

	// RefreshInterval controls how often the displayed location is
	// re-fetched; 0 disables refreshing.
	RefreshInterval time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	if cfg.OpenWeatherAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg.DefaultQuery = getenvDefault("DEFAULT_CITY", "London")
	cfg.GeoIPURL = getenvDefault("GEOIP_URL", "http://ip-api.com/json")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	// Refresh interval: default 15 minutes, 0 disables.
	intervalStr := getenvDefault("REFRESH_INTERVAL", "15m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

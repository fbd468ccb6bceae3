package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port       string
	DBDriver   string // "postgres" | "sqlite"
	DBURL      string
	JWTSecret  string
	TokenTTL   time.Duration
	CORSOrigin string
	LogLevel   string
	LogPretty  bool

	UploadDir     string
	PublicBaseURL string

	StoreTimeout time.Duration

	// DirectOrderRequireAvailable rejects direct orders on sold artworks.
	// When false, an order is recorded for any existing artwork.
	DirectOrderRequireAvailable bool
	// PublicArtistReports exposes /reports/artist/:id without authentication.
	PublicArtistReports bool

	GoogleClientID         string
	GoogleClientSecret     string
	GoogleRedirectURL      string
	GoogleFrontendRedirect string
}

// GoogleEnabled reports whether Google sign-in routes should be mounted.
func (c *Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != "" && c.GoogleRedirectURL != ""
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found. Using system environment variables.")
	}

	var missing []string
	mustEnv := func(key string) string {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			missing = append(missing, key)
		}
		return v
	}

	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBURL:      mustEnv("DB_URL"),
		JWTSecret:  mustEnv("JWT_SECRET"),
		TokenTTL:   getDuration("TOKEN_TTL", 24*time.Hour),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:5173"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogPretty:  getBool("LOG_PRETTY", true),

		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", ""), "/"),

		StoreTimeout: getDuration("STORE_TIMEOUT", 5*time.Second),

		DirectOrderRequireAvailable: getBool("DIRECT_ORDER_REQUIRE_AVAILABLE", true),
		PublicArtistReports:         getBool("PUBLIC_ARTIST_REPORTS", false),

		GoogleClientID:         getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:     getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:      getEnv("GOOGLE_REDIRECT_URL", ""),
		GoogleFrontendRedirect: getEnv("GOOGLE_FRONTEND_REDIRECT", ""),
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	if cfg.DBDriver != "postgres" && cfg.DBDriver != "sqlite" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return cfg, nil
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid boolean, using default")
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid duration, using default")
		return fallback
	}
	return d
}

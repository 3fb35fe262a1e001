package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the client needs to reach the Co-Alert API and
// keep its single piece of durable state (the stored credential pair).
type Config struct {
	// APIBaseURL is the root of the Co-Alert REST API, without a trailing slash.
	APIBaseURL string
	// DataDir is where the credential store keeps its Badger database.
	DataDir string
	// HTTPTimeout bounds every request; the source app had no timeout at all,
	// so this is a defensive addition rather than reproduced behavior.
	HTTPTimeout time.Duration
}

// Load reads configuration from a .env file (if present) and the
// environment, falling back to defaults. Call once at startup.
func Load() *Config {
	// A missing .env is fine; explicit environment still wins.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: could not load .env: %v", err)
	}

	cfg := &Config{
		APIBaseURL:  getEnv("COALERT_API_URL", "http://localhost:3000"),
		DataDir:     getEnv("COALERT_DATA_DIR", "data/coalert"),
		HTTPTimeout: 10 * time.Second,
	}

	if raw := os.Getenv("COALERT_HTTP_TIMEOUT"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			log.Printf("config: invalid COALERT_HTTP_TIMEOUT %q, keeping %s", raw, cfg.HTTPTimeout)
		} else {
			cfg.HTTPTimeout = time.Duration(secs) * time.Second
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DeckPath      string
	HistoryDBPath string
	LogLevel      string
	NoColor       bool
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent.
	_ = godotenv.Load()

	return Config{
		DeckPath:      envOr("DECK_PATH", "flashsprint.deck"),
		HistoryDBPath: envOr("HISTORY_DB_PATH", "flashsprint-history.db"),
		LogLevel:      envOr("LOG_LEVEL", "INFO"),
		NoColor:       envBoolOr("NO_COLOR", false),
	}
}

// Validate checks the configuration for values the app cannot run with.
// All problems are reported at once.
func (c Config) Validate() error {
	var problems []string

	if c.DeckPath == "" {
		problems = append(problems, "DECK_PATH cannot be empty")
	}
	if c.HistoryDBPath == "" {
		problems = append(problems, "HISTORY_DB_PATH cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR (got %q)", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		// NO_COLOR=<anything> is conventionally truthy (https://no-color.org).
		return true
	}
	return def
}

package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ErrPartialConfig means some but not all required DB_* variables were set.
// Startup must fail rather than silently fall back to the local store.
var ErrPartialConfig = errors.New("partial database configuration")

// Config selects and parameterizes the backing store. A non-empty Host means
// the networked postgres store; otherwise the local sqlite file is used.
type Config struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string

	// File is the sqlite database path when no network store is configured.
	File string

	// ListenPort is the HTTP port the server binds to.
	ListenPort string
}

// UsesNetworkStore reports whether the networked postgres store was configured.
func (c Config) UsesNetworkStore() bool {
	return c.Host != ""
}

// Load reads the store configuration from environment variables.
//
// If none of the DB_* variables are set the local file store is selected.
// If any are set, DB_HOST, DB_NAME, DB_USER and DB_PASSWORD must all be set;
// DB_PORT and DB_SSL_MODE get defaults. Anything in between is rejected.
func Load() (Config, error) {
	// Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	cfg := Config{
		Host:       os.Getenv("DB_HOST"),
		Port:       os.Getenv("DB_PORT"),
		Name:       os.Getenv("DB_NAME"),
		User:       os.Getenv("DB_USER"),
		Password:   os.Getenv("DB_PASSWORD"),
		SSLMode:    os.Getenv("DB_SSL_MODE"),
		ListenPort: getEnv("PORT", "8080"),
	}

	anySet := cfg.Host != "" || cfg.Port != "" || cfg.Name != "" ||
		cfg.User != "" || cfg.Password != "" || cfg.SSLMode != ""
	if !anySet {
		// Empty counts as unset, same as the DB_* variables above.
		cfg.File = os.Getenv("DB_FILE")
		if cfg.File == "" {
			cfg.File = "drivers.db"
		}
		return cfg, nil
	}

	var missing []string
	if cfg.Host == "" {
		missing = append(missing, "DB_HOST")
	}
	if cfg.Name == "" {
		missing = append(missing, "DB_NAME")
	}
	if cfg.User == "" {
		missing = append(missing, "DB_USER")
	}
	if cfg.Password == "" {
		missing = append(missing, "DB_PASSWORD")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: missing %s", ErrPartialConfig, strings.Join(missing, ", "))
	}

	if cfg.Port == "" {
		cfg.Port = "5432"
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "disable"
	}
	return cfg, nil
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

package config

import (
	"os"
	"strconv"
)

// Config holds the server configuration, loaded from the environment.
type Config struct {
	Port           string
	DBPath         string
	JWTSecret      string // empty disables API auth
	MaxUploadBytes int64
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/workouts/workouts.db"
	}

	maxUpload := int64(10 * 1024 * 1024)
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			maxUpload = parsed
		}
	}

	return &Config{
		Port:           port,
		DBPath:         dbPath,
		JWTSecret:      os.Getenv("JWT_SECRET"),
		MaxUploadBytes: maxUpload,
	}
}

// Package config loads server configuration from the environment.
package config

import "os"

type Config struct {
	// Port is the HTTP listen port.
	Port string

	// DBPath is the SQLite database file path.
	DBPath string
}

// Load reads configuration from environment variables, falling back to
// development defaults. A .env file, if present, is loaded by main
// before this runs.
func Load() Config {
	return Config{
		Port:   getEnv("PORT", "8080"),
		DBPath: getEnv("DB_PATH", "./data/mess.db"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

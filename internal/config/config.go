package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port         string
	DatabaseDSN  string
	JWTSecret    string
	UploadDir    string
	ClientOrigin string
	CookieSecure bool
	Debug        bool
}

// Load reads configuration from the environment with local-dev defaults.
// godotenv is loaded by main before this runs.
func Load() *Config {
	return &Config{
		Port:         getEnvString("PORT", "8080"),
		DatabaseDSN:  getEnvString("DATABASE_DSN", "host=localhost user=postgres password=password dbname=applysmart port=5432 sslmode=disable"),
		JWTSecret:    getEnvString("JWT_SECRET", "dev-secret-change-me"),
		UploadDir:    getEnvString("UPLOAD_DIR", "uploads"),
		ClientOrigin: getEnvString("CLIENT_ORIGIN", "http://localhost:5173"),
		CookieSecure: getEnvBool("COOKIE_SECURE", false),
		Debug:        getEnvBool("DEBUG", false),
	}
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

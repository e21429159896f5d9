package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings, all overridable via environment
// variables (optionally from a .env file).
type Config struct {
	ListenAddr string
	DataFile   string
	JWTSecret  string
}

var AppConfig *Config

// Load reads .env if present and builds the configuration with development
// defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	AppConfig = &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
		DataFile:   getEnv("DATA_FILE", "cat-tracker-data.json"),
		JWTSecret:  getEnv("JWT_SECRET", "cat-tracker-secret-key"),
	}
	return AppConfig
}

// JWTSecret returns the signing key even when Load has not run, so the auth
// helpers stay usable from tests and the CLI tools.
func JWTSecret() []byte {
	if AppConfig != nil {
		return []byte(AppConfig.JWTSecret)
	}
	return []byte(getEnv("JWT_SECRET", "cat-tracker-secret-key"))
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

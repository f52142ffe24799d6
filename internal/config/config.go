// Package config loads process-level settings from the environment. Game
// rules live in the simulation package's JSON config; this covers only what
// the host process needs before the game starts.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's process configuration.
type Config struct {
	WindowWidth  int    // Window width in pixels
	WindowHeight int    // Window height in pixels
	RulesPath    string // Path to the simulation rules JSON file
	AudioEnabled bool   // Whether to open the speaker
}

// Load reads configuration from the environment, loading a .env file first
// if one is present. Every variable has a sensible default; nothing is
// required.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env file not found or could not be loaded: %v", err)
	}

	return Config{
		WindowWidth:  getEnvAsInt("WINDOW_WIDTH", 1280),
		WindowHeight: getEnvAsInt("WINDOW_HEIGHT", 800),
		RulesPath:    getEnv("RULES_PATH", "data/rules.json"),
		AudioEnabled: getEnvAsBool("AUDIO_ENABLED", true),
	}
}

// getEnv retrieves an environment variable or returns the fallback.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvAsInt retrieves an environment variable as an integer. A value that
// does not parse is a configuration error and aborts startup.
func getEnvAsInt(key string, fallback int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsBool retrieves an environment variable as a boolean.
func getEnvAsBool(key string, fallback bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Fatalf("Environment variable %s must be a boolean: %v", key, err)
	}
	return value
}

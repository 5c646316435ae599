package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the HTTP server.
type Config struct {
	ServerAddress string
	GinMode       string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ServerAddress: getEnvWithDefault("SERVER_ADDRESS", ":8081"),
		GinMode:       getEnvWithDefault("GIN_MODE", "debug"),
	}
}

func getEnvWithDefault(name, defaultValue string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return defaultValue
}

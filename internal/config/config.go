package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds process configuration, loaded once at startup.
type Config struct {
	MongoURI      string
	MongoDB       string
	AdminUsername string
	AdminPassword string
	Port          string
}

// Load reads configuration from the environment. A .env file is honored when
// present. Admin credentials have no fallback: startup fails rather than
// running with a well-known default pair.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "devi_mantras_db"),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		Port:          getEnv("PORT", "8080"),
	}

	if cfg.AdminUsername == "" {
		return nil, fmt.Errorf("ADMIN_USERNAME is empty")
	}
	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD is empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"errors"
	"os"
)

// Config holds the configuration values for the application.
type Config struct {
	MongoURI      string
	MongoDatabase string
	Port          string
	JWTSecret     string
}

// Load reads configuration from environment variables. MONGO_URI and
// JWT_SECRET are required; startup must fail without them rather than fall
// back to a baked-in value.
func Load() (*Config, error) {
	cfg := &Config{
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: os.Getenv("MONGO_DATABASE"),
		Port:          os.Getenv("API_PORT"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = "medbot"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg, nil
}

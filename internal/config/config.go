package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Port          string
	Env           string
	DBDriver      string // "postgres" or "sqlite"
	DatabaseURL   string
	DBPath        string
	JWTSecret     string
	AdminEmail    string
	AdminPassword string
}

// LoadConfig reads .env (if present) and the process environment.
// JWT_SECRET has no default on purpose: the server must not start
// with a guessable signing key.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file loaded")
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("APP_ENV", "development"),
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		DBPath:        getEnv("DB_PATH", "./leadgate.db"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	if cfg.DBDriver == "postgres" && cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required when DB_DRIVER=postgres")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

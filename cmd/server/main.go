package main

import (
	"leadgate/internal/api"
	"leadgate/internal/auth"
	"leadgate/internal/config"
	"leadgate/internal/database"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("failed to seed admin account: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret)
	r := api.NewRouter(db, cfg, tokens)

	log.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

package main

import (
	"time"

	"github.com/sirupsen/logrus"

	"studymate/internal/config"
	"studymate/internal/database"
	"studymate/internal/server"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	if cfg.Env == "dev" {
		log.SetLevel(logrus.DebugLevel)
	}
	log.Infof("config loaded: env=%s port=%s", cfg.Env, cfg.Port)

	db, err := database.Connect(cfg.DSN)
	if err != nil {
		log.Fatalf("DB connect error: %v", err)
	}
	log.Info("MySQL connected")

	if err := database.RunMigrations(db, "migrations", log); err != nil {
		log.Fatalf("migrations error: %v", err)
	}

	ttl := time.Duration(cfg.JWTTTLHours) * time.Hour
	srv := server.NewServer(":"+cfg.Port, db, log, cfg.JWTSecret, ttl)
	if err := srv.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

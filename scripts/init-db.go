package main

import (
	"lanchonete/internal/config"
	"lanchonete/internal/database"
	"lanchonete/internal/migrations"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.Info("initializing database...")

	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL, cfg.StatementTimeoutMS)
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}

	if err := migrations.Reset(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logrus.Fatalf("failed to reset database: %v", err)
	}

	logrus.Info("database initialization completed successfully!")
}

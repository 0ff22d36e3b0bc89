// Package main provisions an admin account. Run once per environment; the
// API has no self-registration surface.
package main

import (
	"context"
	"flag"
	"os"

	"go.uber.org/zap"

	"journey-catalog-service/internal/auth"
	"journey-catalog-service/internal/config"
	"journey-catalog-service/internal/domain"
	"journey-catalog-service/internal/infra/postgres"
	"journey-catalog-service/internal/infra/postgres/migrations"
	"journey-catalog-service/internal/logger"
)

func main() {
	var (
		username = flag.String("username", os.Getenv("ADMIN_USERNAME"), "admin username")
		password = flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	)
	flag.Parse()

	cfg, err := config.Load("")
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.New(
		logger.Config{Level: cfg.Logger.Level, Format: "console", Output: "stdout"},
		logger.SentryConfig{},
	)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	if *username == "" || *password == "" {
		log.Fatal("username and password are required")
	}

	db, err := postgres.NewConnection(
		postgres.Config{
			Host:         cfg.Database.Host,
			Port:         cfg.Database.Port,
			Name:         cfg.Database.Name,
			User:         cfg.Database.User,
			Password:     cfg.Database.Password,
			SSLMode:      cfg.Database.SSLMode,
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
			MaxLifetime:  cfg.Database.MaxLifetime,
		},
		log.Logger,
	)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = postgres.Close(db) }()

	if err := migrations.Run(db); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("failed to hash password", zap.Error(err))
	}

	repo := postgres.NewRepository(db)
	admin := &domain.Admin{Username: *username, PasswordHash: hash}
	if err := repo.CreateAdmin(context.Background(), admin); err != nil {
		log.Fatal("failed to create admin", zap.Error(err))
	}

	log.Info("admin created",
		zap.String("id", admin.ID),
		zap.String("username", admin.Username),
	)
}

package main

import (
	"context"
	"os"
	"rentals/server/config"
	"rentals/server/internal/api"
	"rentals/server/internal/database"
	"rentals/server/internal/seed"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithError(err).Warn("Unknown log level, keeping info")
	} else {
		logger.SetLevel(level)
	}

	logger.Infof("Using %s database", cfg.Database.Driver)
	db, err := database.NewDatabase(cfg.Database, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	ctx := context.Background()
	if cfg.Database.ResetSchema {
		logger.Warn("Dropping existing schema")
		if err := db.DropTables(ctx); err != nil {
			logger.WithError(err).Fatal("Failed to drop schema")
		}
	}

	logger.Info("Creating database schema...")
	if err := db.CreateTables(ctx); err != nil {
		logger.WithError(err).Fatal("Failed to create schema")
	}

	if cfg.Database.ResetSchema && cfg.SeedFile != "" {
		fixture, err := seed.Load(cfg.SeedFile)
		if err != nil {
			logger.WithError(err).Fatal("Failed to load fixture")
		}
		if err := seed.Apply(ctx, db, fixture, logger); err != nil {
			logger.WithError(err).Error("Fixture applied with rejected records")
		}
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSAllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))

	api.SetupRoutes(router, db, logger)

	logger.Infof("Starting server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}

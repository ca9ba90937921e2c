package main

import (
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bayouhomes/server/config"
	"bayouhomes/server/internal/api"
	"bayouhomes/server/internal/database"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// Cost and rate tables; missing file falls back to built-in defaults
	if err := config.LoadRateTables(); err != nil {
		logger.WithError(err).Fatal("Failed to load rate tables")
	}
	tables := config.GetRateTables()
	logger.Infof("Using rate tables version %s", tables.Version)

	currentDir, err := os.Getwd()
	if err != nil {
		logger.WithError(err).Fatal("Failed to get current directory")
	}

	dbPath := filepath.Join(currentDir, cfg.Server.DBPath)
	logger.Infof("Using database at: %s", dbPath)

	store, err := database.NewStore(dbPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer store.Close()

	logger.Info("Running database migrations...")
	if err := store.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	handler := api.NewHandler(store, cfg, tables, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(api.RequestID(logger))

	api.SetupRoutes(router, handler)

	logger.Infof("Starting server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}

package main

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/skillsync/backend/internal/router"
	"github.com/skillsync/backend/pkg/config"
	"github.com/skillsync/backend/pkg/googleauth"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, assuming environment variables are set.")
	}

	// Load configuration
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET environment variable not set")
	}

	// Initialize database connection
	db, err := config.InitDB(cfg.MongoURI)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Initialize Google ID token verifier
	verifier, err := googleauth.NewIDTokenVerifier(cfg.GoogleClientID)
	if err != nil {
		logrus.Fatalf("Failed to initialize Google verifier: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Mongo, verifier, cfg)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

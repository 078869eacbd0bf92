package router

import (
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/skillsync/backend/internal/handlers"
	"github.com/skillsync/backend/internal/middleware"
	"github.com/skillsync/backend/internal/repositories"
	"github.com/skillsync/backend/pkg/config"
	"github.com/skillsync/backend/pkg/googleauth"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	logrus.Info("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, mgClient *mongo.Client, verifier googleauth.Verifier, cfg *config.Config) {
	db := mgClient.Database(cfg.MongoDatabase)

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewMongoUserRepository(db)
	postRepo := repositories.NewMongoPostRepository(db)
	commentRepo := repositories.NewMongoCommentRepository(db)
	notificationRepo := repositories.NewMongoNotificationRepository(db)
	planRepo := repositories.NewMongoLearningPlanRepository(db)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/auth")
	authHandler := handlers.NewAuthHandler(userRepo, verifier, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	logrus.Info("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	logrus.Info("JWT authentication middleware applied to /api group.")

	// User profile and follow routes
	userHandler := handlers.NewUserHandler(userRepo, notificationRepo)
	userHandler.RegisterUserRoutes(api)
	logrus.Info("User routes configured.")

	// Post routes
	postHandler := handlers.NewPostHandler(postRepo, userRepo, notificationRepo)
	postHandler.RegisterPostRoutes(api)
	logrus.Info("Post routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo, userRepo, notificationRepo)
	commentHandler.RegisterCommentRoutes(api)
	logrus.Info("Comment routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationRepo, userRepo)
	notificationHandler.RegisterNotificationRoutes(api)
	logrus.Info("Notification routes configured.")

	// Learning plan routes
	planHandler := handlers.NewLearningPlanHandler(planRepo, userRepo)
	planHandler.RegisterLearningPlanRoutes(api)
	logrus.Info("Learning plan routes configured.")

	logrus.Info("All routes configured.")
}

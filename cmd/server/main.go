package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/ppam-app/ppam-scheduler/internal/config"
	"github.com/ppam-app/ppam-scheduler/internal/constants"
	"github.com/ppam-app/ppam-scheduler/internal/database"
	"github.com/ppam-app/ppam-scheduler/internal/handlers"
	"github.com/ppam-app/ppam-scheduler/internal/middleware"
	"github.com/ppam-app/ppam-scheduler/internal/participation"
	"github.com/ppam-app/ppam-scheduler/internal/repository"
	"github.com/ppam-app/ppam-scheduler/internal/services"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	logger, err := newLogger(cfg.GinMode)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	congRepo := repository.NewCongregationRepository(db)
	weekRepo := repository.NewWeekRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	incidenciaRepo := repository.NewIncidenciaRepository(db)

	// Shared validation cache
	cache := participation.NewCache(cfg.ValidationCacheTTL)

	// Services
	authService := services.NewAuthService(userRepo, congRepo)
	userService := services.NewUserService(userRepo, cache)
	congService := services.NewCongregationService(congRepo)
	scheduleService := services.NewScheduleService(weekRepo, historyRepo, cache, logger)
	validationService := services.NewValidationService(userRepo, historyRepo, cache, logger)
	incidenciaService := services.NewIncidenciaService(incidenciaRepo, userRepo)

	saveQueue := services.NewSaveQueue(scheduleService, logger,
		cfg.SaveQueueSize, cfg.SaveMinInterval, cfg.SaveMaxRetries)
	defer saveQueue.Close()

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,
		"tcp",
		redisAddr,
		"",
		"",
		[]byte(cfg.SessionSecret),
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	congHandler := handlers.NewCongregationHandler(congService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, saveQueue)
	validationHandler := handlers.NewValidationHandler(validationService)
	incidenciaHandler := handlers.NewIncidenciaHandler(incidenciaService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "PPAM scheduler API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Validation + history (protected)
		api.POST("/validateUserParticipation.json", middleware.RequireAuth(), validationHandler.ValidateUserParticipation)
		api.GET("/getUserParticipationHistory.json", middleware.RequireAuth(), validationHandler.GetUserParticipationHistory)

		// Schedule (read for volunteers, save for admins)
		api.GET("/weekData.json", middleware.RequireAuth(), scheduleHandler.GetWeekData)
		api.POST("/saveWeekData.json", middleware.RequireAuth(), middleware.RequireAdmin(), scheduleHandler.SaveWeekData)

		// User administration (admin)
		users := api.Group("/users")
		users.Use(middleware.RequireAuth(), middleware.RequireAdmin())
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.PUT("/:id/rules", userHandler.ReplaceRules)
			users.PUT("/:id/availability", userHandler.UpdateAvailability)
		}

		// Congregations (admin)
		congs := api.Group("/congregations")
		congs.Use(middleware.RequireAuth(), middleware.RequireAdmin())
		{
			congs.GET("", congHandler.ListCongregations)
			congs.POST("", congHandler.CreateCongregation)
			congs.GET("/:id", congHandler.GetCongregation)
			congs.PUT("/:id", congHandler.UpdateCongregation)
			congs.DELETE("/:id", congHandler.DeleteCongregation)
			congs.POST("/:id/regenerate-code", congHandler.RegenerateAccessCode)
		}

		// Incidencias (admin)
		incidencias := api.Group("/incidencias")
		incidencias.Use(middleware.RequireAuth(), middleware.RequireAdmin())
		{
			incidencias.GET("", incidenciaHandler.ListIncidencias)
			incidencias.POST("", incidenciaHandler.CreateIncidencia)
			incidencias.DELETE("/:id", incidenciaHandler.DeleteIncidencia)
		}
	}

	// Start server
	logger.Info("server starting", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newLogger(mode string) (*zap.Logger, error) {
	if mode == "release" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

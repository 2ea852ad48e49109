package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Wizz677/applysmart/internal/auth"
	"github.com/Wizz677/applysmart/internal/config"
	"github.com/Wizz677/applysmart/internal/database"
	"github.com/Wizz677/applysmart/internal/handlers"
	"github.com/Wizz677/applysmart/internal/logger"
	"github.com/Wizz677/applysmart/internal/models"
	"github.com/Wizz677/applysmart/internal/services"
	"github.com/Wizz677/applysmart/internal/storage"
	"github.com/Wizz677/applysmart/internal/token"
)

func main() {
	// 1. Load Environment Variables (a missing .env is fine, config has
	// local-dev defaults)
	_ = godotenv.Load()
	cfg := config.Load()

	zlog, err := logger.New(cfg.Debug)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zlog.Sync()

	// 2. Database Connection + demo seed
	db, err := database.Connect(cfg.DatabaseDSN, zlog)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Seed(db, zlog); err != nil {
		zlog.Fatal("failed to seed demo data", zap.Error(err))
	}

	// 3. Initialize Core Services (Dependencies)
	codec := token.NewCodec(cfg.JWTSecret)
	guard := auth.NewGuard(codec, cfg.CookieSecure)
	uploads, err := storage.NewUploads(cfg.UploadDir)
	if err != nil {
		zlog.Fatal("failed to prepare upload directory", zap.Error(err))
	}

	accountService := services.NewAccountService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)
	matcherService := services.NewMatcherService(db)

	// 4. Initialize Handlers
	authHandler := handlers.NewAuthHandler(accountService, codec, guard, zlog)
	jobHandler := handlers.NewJobHandler(jobService, matcherService, zlog)
	applicationHandler := handlers.NewApplicationHandler(applicationService, zlog)
	profileHandler := handlers.NewProfileHandler(accountService, uploads, zlog)

	// 5. Setup Router & CORS
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.ClientOrigin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	r.Use(cors.New(corsConfig))

	// Static serving of uploaded resumes
	r.Static("/uploads", cfg.UploadDir)

	// 6. Define Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Signup)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authHandler.Logout)
			authGroup.GET("/me", guard.RequireAuth(), authHandler.Me)
		}

		// Job Routes
		api.GET("/jobs", jobHandler.List)
		api.GET("/jobs/:id", jobHandler.Get)
		api.POST("/jobs", guard.RequireAuth(), guard.RequireRole(models.RoleEmployer), jobHandler.Create)
		api.GET("/jobs/:id/match", guard.RequireAuth(), guard.RequireRole(models.RoleJobSeeker), jobHandler.Match)

		// Application Workflow
		api.POST("/jobs/:id/apply", guard.RequireAuth(), guard.RequireRole(models.RoleJobSeeker), applicationHandler.Apply)
		api.GET("/job-seeker/applications", guard.RequireAuth(), guard.RequireRole(models.RoleJobSeeker), applicationHandler.Mine)
		api.GET("/employer/jobs", guard.RequireAuth(), guard.RequireRole(models.RoleEmployer), jobHandler.Mine)
		api.GET("/employer/jobs/:id/applicants", guard.RequireAuth(), guard.RequireRole(models.RoleEmployer), applicationHandler.Applicants)

		// Profile Routes
		profile := api.Group("/profile", guard.RequireAuth())
		{
			profile.PUT("", profileHandler.Update)
			profile.POST("/resume", profileHandler.UploadResume)
		}
	}

	zlog.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server failed to start", zap.Error(err))
	}
}

package main

import (
	"log"
	"net/http"
	"os"

	_ "fitgoals/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"fitgoals/internal/auth"
	"fitgoals/internal/cache"
	"fitgoals/internal/config"
	"fitgoals/internal/db"
	"fitgoals/internal/handler"
	"fitgoals/internal/model"
	"fitgoals/internal/repository"
	"fitgoals/internal/router"
	"fitgoals/internal/service"
)

// @title Fitness Goal Tracker API
// @version 1.0
// @description Personal fitness goal tracker with JWT authentication: goals with numeric targets and date ranges, and dated progress entries recorded against them.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Progress{},
			&model.Goal{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Goal{},
		&model.Progress{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	goalRepo := repository.NewGoalRepository(gormDB)
	progressRepo := repository.NewProgressRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	goalService := service.NewGoalService(goalRepo, progressRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	goalHandler := handler.NewGoalHandler(goalService)
	progressHandler := handler.NewProgressHandler(goalService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		tokenStore,
		authHandler,
		goalHandler,
		progressHandler,
	)

	swaggerURL := "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

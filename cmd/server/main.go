package main

import (
	"log"
	"net/http"
	"os"

	_ "github.com/diegorodrguez7/carta-digital-qr/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/diegorodrguez7/carta-digital-qr/internal/auth"
	"github.com/diegorodrguez7/carta-digital-qr/internal/cache"
	"github.com/diegorodrguez7/carta-digital-qr/internal/config"
	"github.com/diegorodrguez7/carta-digital-qr/internal/db"
	"github.com/diegorodrguez7/carta-digital-qr/internal/handler"
	"github.com/diegorodrguez7/carta-digital-qr/internal/model"
	"github.com/diegorodrguez7/carta-digital-qr/internal/repository"
	"github.com/diegorodrguez7/carta-digital-qr/internal/router"
	"github.com/diegorodrguez7/carta-digital-qr/internal/service"
	"github.com/diegorodrguez7/carta-digital-qr/internal/translate"
)

// @title Qarta Menu API
// @version 0.1.0
// @description QR-code digital menu API: restaurant provisioning, menu editing, publication and superadmin administration.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
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
			&model.Dish{},
			&model.Category{},
			&model.Restaurant{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	restaurantRepo := repository.NewRestaurantRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	dishRepo := repository.NewDishRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	verifier := auth.NewGoogleVerifier(cfg.GoogleClientID)

	translator := translate.NewClient(cfg.TranslateURL)

	// Initialize services
	restaurantService := service.NewRestaurantService(restaurantRepo, cacheClient)
	authService := service.NewAuthService(userRepo, restaurantService, verifier, jwtService, cfg.SuperadminEmails)
	menuService := service.NewMenuService(restaurantRepo, categoryRepo, dishRepo, translator, cacheClient)
	publicationService := service.NewPublicationService(restaurantRepo, dishRepo, cacheClient, cfg.PublicMenuBaseURL)
	adminService := service.NewAdminService(restaurantRepo, cacheClient, cfg.PublicMenuBaseURL)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	meHandler := handler.NewMeHandler(userRepo, restaurantService)
	menuHandler := handler.NewMenuHandler(menuService)
	publicationHandler := handler.NewPublicationHandler(publicationService)
	adminHandler := handler.NewAdminHandler(adminService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		meHandler,
		menuHandler,
		publicationHandler,
		adminHandler,
	)

	if cfg.DevAuthEnabled() {
		log.Println("Development auth bypass is mounted at POST /auth/dev")
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

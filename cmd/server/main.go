package main

import (
	"log"
	"net/http"
	"os"

	_ "shopcart/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"

	"shopcart/internal/auth"
	"shopcart/internal/cache"
	"shopcart/internal/config"
	"shopcart/internal/db"
	"shopcart/internal/handler"
	"shopcart/internal/model"
	"shopcart/internal/repository"
	"shopcart/internal/router"
	"shopcart/internal/service"
)

// @title Shopcart API
// @version 1.0
// @description E-commerce backend with session-authenticated product catalog and per-user cart.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	// Product prices must serialize as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

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
			&model.CartItem{},
			&model.Product{},
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
		&model.Product{},
		&model.CartItem{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	cartRepo := repository.NewCartRepository(gormDB)

	// Initialize session components
	tokens := auth.NewTokenService(cfg.SessionSecret)
	sessions := auth.NewSessionStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokens, sessions)
	catalogService := service.NewCatalogService(productRepo)
	cartService := service.NewCartService(userRepo, productRepo, cartRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService)
	seedHandler := handler.NewSeedHandler(authService, catalogService)

	// Register routes
	router.Register(
		e,
		cfg,
		tokens,
		authService,
		authHandler,
		productHandler,
		cartHandler,
		seedHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

package main

import (
	"casa_hotels_go/config"
	"casa_hotels_go/db"
	"casa_hotels_go/handlers"
	"casa_hotels_go/middleware"
	"casa_hotels_go/services"
	"casa_hotels_go/services/dates"
	"casa_hotels_go/services/jobs"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := services.SeedProperties(db.DB); err != nil {
		log.Fatalf("Failed to seed properties: %v", err)
	}

	if err := services.InitEncryption(cfg.EncryptionKey); err != nil {
		log.Fatalf("Failed to initialize encryption: %v", err)
	}

	services.InitializeStorage(cfg)
	middleware.InitAssetVersions("static")
	dates.SetLogger(log.Default())

	scheduler := jobs.StartScheduler(db.DB, services.HotelLocation(cfg.HotelTimezone))
	defer scheduler.Stop()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.HTTPErrorHandler

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost},
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files and uploaded photos
	if cfg.ServeStatic {
		e.Static("/static", "static")
	}
	e.GET(services.MediaPathPrefix+"*", handlers.MediaHandler)

	e.GET("/health", handlers.HealthHandler)
	e.GET("/robots.txt", handlers.GetRobotsHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)

	// Pages (CSP, visitor session, CSRF)
	site := e.Group("")
	site.Use(middleware.CSPNonce())
	site.Use(middleware.VisitorSession())
	site.Use(middleware.CSRF(cfg))
	{
		site.GET("/", handlers.HomeHandler)
		site.GET("/properties", handlers.PropertiesHandler)
		site.GET("/properties/:slug", handlers.PropertyDetailHandler)
		site.GET("/about", handlers.WebsiteAboutHandler)
		site.GET("/contact", handlers.WebsiteContactHandler)

		site.POST("/search", handlers.SearchSubmitHandler, middleware.SearchFormRateLimiter.Middleware())
		site.GET("/book/:slug", handlers.BookHandler, middleware.SearchFormRateLimiter.Middleware())
	}

	// JSON API
	api := e.Group("/api")
	api.Use(middleware.APIRateLimiter.Middleware())
	api.Use(middleware.VisitorSession())
	{
		api.GET("/search", handlers.APISearchHandler)
		api.GET("/properties", handlers.APIPropertiesHandler)
		api.GET("/properties/:slug", handlers.APIPropertyHandler)
	}

	// Start server
	go func() {
		log.Printf("Server starting on port %s (environment: %s)", cfg.ServerPort, cfg.Environment)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("[WARNING] Server shutdown: %v", err)
	}
}

package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "cityweather/internal/api/http"
	"cityweather/internal/config"
	"cityweather/internal/geoip"
	"cityweather/internal/refresh"
	"cityweather/internal/state"
	"cityweather/internal/weather"
	"cityweather/internal/weather/openweather"
)

func main() {
	// Load configuration; a missing API key aborts startup.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Outbound collaborators.
	owClient := openweather.NewClient(cfg.OpenWeatherAPIKey, cfg.HTTPTimeout)
	locator := geoip.NewClient(cfg.GeoIPURL, cfg.HTTPTimeout)

	// Single view-state holder and the orchestrating service.
	holder := state.NewHolder()
	service := weather.NewService(owClient, owClient, locator, holder, cfg.DefaultQuery)

	// App-start flow: geolocate, resolve, fetch. Runs in the background so
	// the server can accept requests while the first snapshot loads.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		status := service.Start(ctx)
		if status.Phase == weather.PhaseFailed {
			log.Printf("startup weather flow failed: %s", status.Message)
		}
	}()

	// Periodic refresh of the displayed location.
	refresher := refresh.New(service, cfg.RefreshInterval)
	if err := refresher.Start(); err != nil {
		log.Fatalf("failed to start refresher: %v", err)
	}
	defer refresher.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "cityweather",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "cityweather",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}

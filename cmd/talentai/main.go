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
	"github.com/ka4a/talentai-sub000/internal/api"
	"github.com/ka4a/talentai-sub000/internal/config"
	"github.com/ka4a/talentai-sub000/internal/db"
	"github.com/ka4a/talentai-sub000/internal/services"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	var database *gorm.DB
	var err error
	if cfg.DatabaseURL != "" {
		database, err = db.OpenPostgres(cfg.DatabaseURL)
	} else {
		database, err = db.OpenSQLite(cfg.DBPath)
	}
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	exchange := services.NewStaticExchangeRates(cfg.BaseCurrency, nil)
	handler, err := api.NewHandler(database, cfg.SecretKey, exchange)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "TalentAI",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("TalentAI listening on http://0.0.0.0:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

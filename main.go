// main.go
package main

import (
	"log"
	"time"

	"safari-booking/cmd"
	"safari-booking/internal/data/fallback"
	"safari-booking/internal/notify"
	"safari-booking/internal/wire"
	"safari-booking/pkg/database"
	"safari-booking/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("env", config.App.Env),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database. Without DATABASE_URL every read is served from
	// fallback content and submissions go to the in-memory store.
	var db database.PgxIface
	if config.Database.Configured() {
		db, err = database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to create database pool", zap.Error(err))
		}
		defer db.Close()

		if err := database.PingWithTimeout(db, 5*time.Second); err != nil {
			logger.Warn("Database not reachable yet, reads will fall back until it is", zap.Error(err))
		} else {
			logger.Info("Database connected successfully")
		}
	} else {
		logger.Warn("DATABASE_URL not set, running on fallback content and in-memory storage")
	}

	// Fallback content
	fallbackSet := fallback.Default()
	if config.Fallback.File != "" {
		fallbackSet, err = fallback.Load(config.Fallback.File)
		if err != nil {
			logger.Fatal("Failed to load fallback content", zap.Error(err), zap.String("file", config.Fallback.File))
		}
		logger.Info("Fallback content loaded",
			zap.String("file", config.Fallback.File),
			zap.Int("packages", len(fallbackSet.TourPackages)),
		)
	}

	// Notifications
	var sender notify.Sender = notify.NewLogSender(logger)
	if config.Notify.ResendAPIKey != "" {
		sender = notify.NewResendSender(config.Notify.ResendAPIKey, config.Notify.From, logger)
	} else if config.IsProduction() {
		logger.Warn("RESEND_API_KEY is not set, booking notifications are disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Wire all dependencies
	app := wire.Wiring(wire.Options{
		DB:       db,
		Fallback: fallbackSet,
		Notifier: notify.NewNotifier(sender, config.Notify.To, logger),
		Registry: registry,
	}, config, logger)

	// Start server
	if err := cmd.APIServer(app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return
	}
	logger.Info("Server stopped")
}

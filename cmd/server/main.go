package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marketmood/feargreed/internal/config"
	"github.com/marketmood/feargreed/internal/database"
	"github.com/marketmood/feargreed/internal/history"
	"github.com/marketmood/feargreed/internal/index"
	"github.com/marketmood/feargreed/internal/marketdata"
	"github.com/marketmood/feargreed/internal/scheduler"
	"github.com/marketmood/feargreed/internal/server"
	"github.com/marketmood/feargreed/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		println("Failed to load configuration:", err.Error())
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting Fear & Greed service")

	// Initialize database
	db, err := database.New(database.Config{
		Path: cfg.DatabasePath,
		Name: "history",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	store, err := history.NewStore(db, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize history store")
	}

	client := marketdata.NewClient(cfg.APIURL, log)
	engine := index.NewEngine(log)

	// Register the daily snapshot job
	sched := scheduler.New(log)
	job := scheduler.NewSnapshotJob(client, engine, store, log)
	if err := sched.AddJob(cfg.SnapshotSchedule, "daily_snapshot", job.Run); err != nil {
		log.Fatal().Err(err).Msg("Failed to register snapshot job")
	}
	sched.Start()
	defer sched.Stop()

	// Initialize HTTP server
	srv := server.New(server.Config{
		Port:     cfg.Port,
		Log:      log,
		Client:   client,
		Engine:   engine,
		History:  store,
		CacheTTL: cfg.CacheTTL,
		DevMode:  cfg.DevMode,
	})

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

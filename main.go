package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"forum/internal/app"
	"forum/internal/config"
	"forum/internal/utils"

	"go.uber.org/zap"
)

// @title Forum API
// @version 1.0
// @description Threads and posts of a small discussion forum.
// @BasePath /api/forum
func main() {
	envErr := utils.LoadEnv()

	cfg := config.LoadConfig()

	logger, err := utils.NewLogger(&cfg)
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	defer logger.Sync()

	if envErr != nil {
		logger.Warn("ENV file not found or failed to load, using defaults")
	} else {
		logger.Info("ENV file loaded successfully")
	}

	logger.Info("Config loaded",
		zap.String("server_port", cfg.ServerPort),
		zap.String("db_driver", cfg.DBDriver),
		zap.String("db_path", cfg.DBPath),
		zap.String("env", cfg.Env),
	)

	application, err := app.Bootstrap(&cfg, logger)
	if err != nil {
		logger.Fatal("Failed to bootstrap application", zap.Error(err))
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Warn("Failed to close store", zap.Error(err))
		}
	}()

	addr := ":" + cfg.ServerPort
	srv := &http.Server{
		Addr:    addr,
		Handler: application.Router.Engine,
	}

	go func() {
		logger.Info("Server started", zap.String("addr", "0.0.0.0"+addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server stopped with error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("Server exited gracefully")
}

// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/krowne/krownebase/internal/cache"
	"github.com/krowne/krownebase/internal/config"
	"github.com/krowne/krownebase/internal/database"
	"github.com/krowne/krownebase/internal/i18n"
	"github.com/krowne/krownebase/internal/logging"
	"github.com/krowne/krownebase/internal/router"
	"github.com/krowne/krownebase/internal/services"
	"github.com/krowne/krownebase/internal/tagging"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	logging.Setup(cfg.Environment, cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize database")
	}
	defer database.Close(db)

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		logrus.WithError(err).Fatal("Failed to run migrations")
	}

	// Initialize i18n
	if err := i18n.Initialize(cfg.I18n.LocalesPath, cfg.I18n.DefaultLocale); err != nil {
		logrus.WithError(err).Fatal("Failed to initialize i18n")
	}

	ctx := context.Background()

	scrapeCache, err := cache.New(ctx, cfg.Redis)
	if err != nil {
		logrus.WithError(err).Warn("Redis unavailable, scrape results will not be cached")
		scrapeCache = cache.Noop{}
	}
	defer scrapeCache.Close()

	storageService, err := services.NewStorageService(cfg.AWS)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize storage")
	}
	if !storageService.Enabled() {
		logrus.Info("S3 credentials not set, import archiving disabled")
	}

	dictionary := tagging.Default()
	if cfg.Tagging.KeywordsPath != "" {
		if dictionary, err = tagging.LoadDictionary(cfg.Tagging.KeywordsPath); err != nil {
			logrus.WithError(err).Fatal("Failed to load tag dictionary")
		}
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.Initialize(db, cfg, scrapeCache, storageService, dictionary)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logrus.WithField("port", cfg.Server.Port).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
	}

	logrus.Info("Server exited")
}

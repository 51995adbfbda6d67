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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/cache"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/config"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/database"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/i18n"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/metrics"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/router"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	setupLogging(cfg)

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
	if err := database.SeedInitialData(db, cfg.Admin.LoginID, cfg.Admin.Password); err != nil {
		logrus.WithError(err).Fatal("Failed to seed initial data")
	}

	// Initialize i18n
	if err := i18n.Initialize(cfg.I18n.DefaultLocale); err != nil {
		logrus.WithError(err).Fatal("Failed to initialize i18n")
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	storageService, err := services.NewStorageService(cfg.AWS)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize storage")
	}

	// Initialize router
	r := router.Initialize(ctx, db, cfg, router.Dependencies{
		DeviceCache: newDeviceCache(ctx, cfg),
		Metrics:     metrics.New(registry),
		Storage:     storageService,
	})

	// Create HTTP server
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
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
	}

	logrus.Info("Server exited")
}

func setupLogging(cfg *config.Config) {
	if cfg.Log.Format == "json" || cfg.Environment == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logrus.WithField("level", cfg.Log.Level).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// newDeviceCache returns nil when caching is disabled. A redis backend that cannot be
// reached falls back to the in-process cache.
func newDeviceCache(ctx context.Context, cfg *config.Config) cache.DeviceCache {
	if !cfg.Cache.Enabled {
		logrus.Info("Device cache disabled")
		return nil
	}

	if cfg.Cache.Backend == config.CacheBackendRedis {
		client, err := cache.NewRedisClient(ctx, cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
		if err == nil {
			logrus.WithField("addr", cfg.Redis.Addr()).Info("Device cache backed by redis")
			return cache.NewRedisCache(client, cfg.Cache.TTL)
		}
		logrus.WithError(err).Warn("Redis unavailable, falling back to memory cache")
	}

	logrus.WithFields(logrus.Fields{
		"capacity": cfg.Cache.Capacity,
		"ttl":      cfg.Cache.TTL,
	}).Info("Device cache in memory")
	return cache.NewMemoryCache(cfg.Cache.Capacity, cfg.Cache.TTL)
}

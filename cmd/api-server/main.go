package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"albumrater/database"
	"albumrater/internal/cache"
	"albumrater/internal/config"
	"albumrater/internal/http-api/handler"
	"albumrater/internal/http-api/middleware"
	"albumrater/internal/http-api/repository"
	"albumrater/internal/http-api/service"
	"albumrater/internal/spotify"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	// Redis is optional; without it catalog lookups always hit upstream
	var catalogCache *cache.CatalogCache
	if cfg.RedisURL != "" {
		catalogCache, err = cache.New(cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			logger.Error("redis connection failed", "error", err)
			os.Exit(1)
		}
		defer catalogCache.Close()
		logger.Info("catalog cache enabled")
	} else {
		logger.Info("REDIS_URL not set, catalog cache disabled")
	}

	tokens := spotify.NewTokenProvider(cfg.SpotifyAccountsURL, cfg.SpotifyClientID, cfg.SpotifyClientSecret)
	spotifyClient := spotify.NewClient(cfg.SpotifyAPIURL, tokens)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	userService := service.NewUserService(userRepo, followRepo)
	catalogService := service.NewCatalogService(spotifyClient, catalogCache)
	ratingService := service.NewRatingService(ratingRepo, followRepo, catalogService)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	catalogHandler := handler.NewCatalogHandler(catalogService, ratingService, userService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authHandler.RegisterRoutes(r)

	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(authService))
	userHandler.RegisterRoutes(protected)
	ratingHandler.RegisterRoutes(protected)
	catalogHandler.RegisterRoutes(protected)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting api server", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}

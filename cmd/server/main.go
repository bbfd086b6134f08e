package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/auth"
	"github.com/yukikurage/taskboard-api/internal/cache"
	"github.com/yukikurage/taskboard-api/internal/config"
	"github.com/yukikurage/taskboard-api/internal/database"
	"github.com/yukikurage/taskboard-api/internal/handlers"
	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/repository"
	"github.com/yukikurage/taskboard-api/internal/router"
	"github.com/yukikurage/taskboard-api/internal/services"
	"github.com/yukikurage/taskboard-api/internal/validation"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func run(cfg *config.Config, logger *slog.Logger) error {
	gin.SetMode(cfg.GinMode)
	if err := validation.Register(); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}

	// Connect to database
	if err := database.Connect(cfg, logger); err != nil {
		return err
	}
	defer database.Close()

	if err := database.Migrate(logger); err != nil {
		return err
	}
	db := database.GetDB()

	healthChecks := map[string]handlers.Pinger{"database": database.Pinger{DB: db}}

	var tokenCache cache.TokenCache
	switch cfg.TokenCache {
	case "redis":
		redisCache := cache.NewRedisCache(cache.NewRedisPool(cache.RedisOptions{
			Addr:     cfg.RedisAddr(),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			PoolSize: cfg.RedisPoolSize,
		}))
		defer redisCache.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisCache.Ping(pingCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr(), err)
		}
		logger.Info("token cache ready", slog.String("backend", "redis"), slog.String("addr", cfg.RedisAddr()))
		tokenCache = redisCache
		healthChecks["redis"] = redisCache
	default:
		logger.Warn("using in-process token cache; revocations are lost on restart")
		tokenCache = cache.NewMemoryCache()
	}

	issuer, err := auth.NewTokenIssuer(auth.TokenConfig{
		AccessSecret:  cfg.JWTAccessSecret,
		RefreshSecret: cfg.JWTRefreshSecret,
		AccessTTL:     cfg.JWTAccessTTL,
		RefreshTTL:    cfg.JWTRefreshTTL,
	})
	if err != nil {
		return err
	}
	hasher := auth.NewPasswordHasher()

	providers := auth.Providers{}
	if cfg.GoogleClientID != "" {
		providers[models.ProviderGoogle] = auth.NewGoogleProvider(auth.OAuthClientConfig{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
		})
	}
	if cfg.GitHubClientID != "" {
		providers[models.ProviderGitHub] = auth.NewGitHubProvider(auth.OAuthClientConfig{
			ClientID:     cfg.GitHubClientID,
			ClientSecret: cfg.GitHubClientSecret,
			RedirectURL:  cfg.GitHubRedirectURL,
		})
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)
	columnRepo := repository.NewColumnRepository(db)

	// Services
	users := services.NewUserService(userRepo, hasher)
	items := services.NewChecklistItemService(repository.NewChecklistItemRepository(db))
	svc := router.Services{
		Auth:       services.NewAuthService(userRepo, users, hasher, issuer, tokenCache, providers, logger),
		Users:      users,
		Dashboards: services.NewDashboardService(dashboardRepo, userRepo),
		Columns:    services.NewColumnService(columnRepo, dashboardRepo),
		Cards: services.NewCardService(repository.NewCardRepository(db), columnRepo, dashboardRepo, userRepo, services.CardChildren{
			Labels:      services.NewLabelService(repository.NewLabelRepository(db)),
			Checklists:  services.NewChecklistService(repository.NewChecklistRepository(db), items),
			Comments:    services.NewCommentService(repository.NewCommentRepository(db), userRepo),
			Attachments: services.NewAttachmentService(repository.NewAttachmentRepository(db)),
		}),
		Invitations: services.NewInvitationService(repository.NewInvitationRepository(db), dashboardRepo),
		Access:      services.NewAccessService(dashboardRepo, columnRepo),
	}

	engine := router.New(svc, router.Options{
		Logger:        logger,
		AllowedOrigin: cfg.CORSAllowedOrigin,
		HealthChecks:  healthChecks,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("server starting", slog.String("addr", srv.Addr), slog.String("db_driver", cfg.DBDriver))
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		// Give in-flight requests time to complete
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		logger.Info("server stopped gracefully")
	}
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/league-standings/brackets"
	"github.com/Dosada05/league-standings/config"
	"github.com/Dosada05/league-standings/db"
	"github.com/Dosada05/league-standings/handlers"
	"github.com/Dosada05/league-standings/repositories"
	"github.com/Dosada05/league-standings/routes"
	"github.com/Dosada05/league-standings/scheduler"
	"github.com/Dosada05/league-standings/services"
	"github.com/Dosada05/league-standings/storage"
	"github.com/go-chi/chi/v5"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second, logger)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	appCtx, cancelApp := context.WithCancel(context.Background())
	defer cancelApp()

	var uploader storage.FileUploader
	if cfg.R2.Enabled() {
		uploader, err = storage.NewR2Uploader(appCtx, storage.R2UploaderConfig{
			AccountID:       cfg.R2.AccountID,
			AccessKeyID:     cfg.R2.AccessKeyID,
			SecretAccessKey: cfg.R2.SecretAccessKey,
			BucketName:      cfg.R2.BucketName,
			PublicBaseURL:   cfg.R2.PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized", slog.String("bucket", cfg.R2.BucketName))
	} else {
		logger.Warn("R2 is not configured, standings snapshots are disabled")
	}

	wsHub := brackets.NewHub(logger)
	go wsHub.Run(appCtx)
	logger.Info("WebSocket Hub started")

	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	eventRepo := repositories.NewPostgresEventRepository(dbConn)
	userRepo := repositories.NewPostgresUserRepository(dbConn)
	snapshotRepo := repositories.NewPostgresStandingSnapshotRepository(dbConn)

	standingService := services.NewStandingService(
		tournamentRepo,
		teamRepo,
		matchRepo,
		eventRepo,
		snapshotRepo,
		uploader,
		cfg.StandingsCacheTTL,
		logger,
	)
	bracketService := services.NewBracketService(standingService, matchRepo, wsHub, logger)
	matchService := services.NewMatchService(matchRepo, tournamentRepo, standingService, wsHub, logger)
	teamService := services.NewTeamService(teamRepo, tournamentRepo)
	authService := services.NewAuthService(userRepo, cfg.JWTSecretKey)
	logger.Info("services initialized")

	refreshScheduler, err := scheduler.NewScheduler(standingService, tournamentRepo, cfg.StandingsRefreshInterval, logger)
	if err != nil {
		logger.Error("failed to create scheduler", slog.Any("error", err))
		os.Exit(1)
	}
	if err := refreshScheduler.Start(); err != nil {
		logger.Error("failed to start scheduler", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := refreshScheduler.Stop(); err != nil {
			logger.Error("failed to stop scheduler", slog.Any("error", err))
		}
	}()

	router := chi.NewRouter()
	routes.SetupRoutes(router, routes.Handlers{
		Auth:      handlers.NewAuthHandler(authService),
		Standing:  handlers.NewStandingHandler(standingService),
		Bracket:   handlers.NewBracketHandler(bracketService),
		Match:     handlers.NewMatchHandler(matchService),
		Team:      handlers.NewTeamHandler(teamService),
		WebSocket: handlers.NewWebSocketHandler(wsHub, cfg.CORSAllowedOrigins, logger),
		Health:    handlers.NewHealthHandler(dbConn),
	}, routes.Options{
		JWTSecret:         cfg.JWTSecretKey,
		AllowedOrigins:    cfg.CORSAllowedOrigins,
		RateLimitRequests: cfg.RateLimitRequests,
		RateLimitWindow:   cfg.RateLimitWindow,
	})
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancelApp()
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		cancelApp()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}

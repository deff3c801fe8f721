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

	"github.com/hangerline/hangerline-backend-go/internal/config"
	"github.com/hangerline/hangerline-backend-go/internal/domain/production"
	appHTTP "github.com/hangerline/hangerline-backend-go/internal/handler/http"
	"github.com/hangerline/hangerline-backend-go/internal/pkg/cron"
	"github.com/hangerline/hangerline-backend-go/internal/pkg/database"
	"github.com/hangerline/hangerline-backend-go/internal/pkg/jwt"
	"github.com/hangerline/hangerline-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/hangerline/hangerline-backend-go/internal/service/auth"
	dashboardService "github.com/hangerline/hangerline-backend-go/internal/service/dashboard"
	"github.com/hangerline/hangerline-backend-go/internal/service/efficiency"
	lineTargetService "github.com/hangerline/hangerline-backend-go/internal/service/linetarget"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	location, err := cfg.Efficiency.Location()
	if err != nil {
		return fmt.Errorf("load timezone: %w", err)
	}
	accessExpiration, err := time.ParseDuration(cfg.JWT.AccessExpiration)
	if err != nil {
		return fmt.Errorf("parse access expiration: %w", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	var productionRepo production.RecordStore = postgresql.NewProductionRepository(db)
	lineTargetRepo := postgresql.NewLineTargetRepository(db)

	scheduler := cron.NewScheduler()
	if interval := cfg.Efficiency.SMVRefresh; interval > 0 {
		smvCache := dashboardService.NewSMVCache(productionRepo)
		scheduler.AddJob("smv_refresh", interval, smvCache.Refresh)
		productionRepo = smvCache
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, accessExpiration)
	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	dashboardSvc := dashboardService.NewDashboardService(productionRepo, dashboardService.Options{
		Policy:            efficiency.PolicyFromConfig(cfg.Efficiency),
		Lines:             cfg.Efficiency.Lines,
		TrendDays:         cfg.Efficiency.TrendDays,
		DefaultWindowDays: cfg.Efficiency.DefaultWindowDays,
		Location:          location,
	})
	lineTargetSvc := lineTargetService.NewLineTargetService(db, lineTargetRepo)

	authHandler := appHTTP.NewAuthHandler(authService)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	lineTargetHandler := appHTTP.NewLineTargetHandler(lineTargetSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			AllowedOrigins: cfg.App.AllowedOrigins,
			Env:            cfg.App.Env,
			Version:        version,
			LogLevel:       level,
			RequestTimeout: cfg.App.QueryTimeout,
		},
		JWTService,
		authHandler,
		dashboardHandler,
		lineTargetHandler,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

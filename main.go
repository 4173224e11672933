package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	appLogger "github.com/FACorreiaa/go-kemet-travel-planner/app/logger"
	appMiddleware "github.com/FACorreiaa/go-kemet-travel-planner/app/middleware"
	"github.com/FACorreiaa/go-kemet-travel-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-kemet-travel-planner/app/tracer"
	"github.com/FACorreiaa/go-kemet-travel-planner/config"
	"github.com/FACorreiaa/go-kemet-travel-planner/internal/container"
	"github.com/FACorreiaa/go-kemet-travel-planner/internal/router"
)

const serviceName = "kemet-travel-planner"

// @title        Kemet Travel Planner API
// @version      1.0
// @description  Generates Egypt travel itineraries with a generative model and serves static travel advice.
// @BasePath     /
func main() {
	// Use standard log until slog is configured, in case godotenv fails
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := appLogger.New(os.Stdout, cfg.IsDevelopment())
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Application stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Application shut down complete.")
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	providers, err := tracer.InitTracingAndMetrics(serviceName, cfg.Environment)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			logger.Error("Telemetry shutdown failed", slog.Any("error", err))
		}
	}()
	metrics.InitAppMetrics()

	c, err := container.NewContainer(ctx, &cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	// Managed platforms own the process and the public socket; metrics share
	// the API listener there.
	var routerMetrics http.Handler
	if cfg.Managed() {
		routerMetrics = tracer.MetricsHandler()
	}
	handler := newRootHandler(c, logger, routerMetrics)

	addr := fmt.Sprintf("0.0.0.0:%s", cfg.Server.HTTPPort)
	if cfg.Managed() {
		addr = cfg.Server.PlatformAddr
		logger.Info("Running in managed mode", slog.String("platform", cfg.Server.Platform))
	}

	servers := []*http.Server{newServer(addr, handler, logger)}
	if !cfg.Managed() && cfg.Handlers.Prometheus.Enabled {
		metricsMux := chi.NewMux()
		metricsMux.Handle("/metrics", tracer.MetricsHandler())
		servers = append(servers, newServer(":"+cfg.Handlers.Prometheus.Port, metricsMux, logger))
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		g.Go(func() error {
			logger.Info("Starting HTTP server", slog.String("address", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server on %s: %w", srv.Addr, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutdown signal received, starting graceful shutdown...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("HTTP server graceful shutdown failed", slog.String("address", srv.Addr), slog.Any("error", err))
				errs = append(errs, err)
				continue
			}
			logger.Info("HTTP server gracefully stopped", slog.String("address", srv.Addr))
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}

// newRootHandler applies the server-wide middleware and mounts the API router.
func newRootHandler(c *container.Container, logger *slog.Logger, metricsHandler http.Handler) http.Handler {
	mainRouter := router.SetupRouter(&router.Config{
		TravelPlanHandler: c.TravelPlanHandler,
		Environment:       c.Config.Environment,
		SwaggerEnabled:    c.Config.Handlers.Swagger.Enabled,
		MetricsHandler:    metricsHandler,
		Timeout:           c.Config.Server.Timeout,
	})

	r := chi.NewMux()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appLogger.StructuredLogger(logger))
	r.Use(appMiddleware.Recoverer(logger))
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Compress(5, "application/json"))
	r.Use(appMiddleware.RecordMetrics)
	r.Mount("/", mainRouter)
	return r
}

// newServer leaves WriteTimeout unset: a plan generation holds the response
// open for as long as the model takes.
func newServer(addr string, handler http.Handler, logger *slog.Logger) *http.Server {
	return &http.Server{
		Addr:        addr,
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 120 * time.Second,
		ErrorLog:    slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

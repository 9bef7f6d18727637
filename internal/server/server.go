package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/config"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/handlers"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/middleware"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const visitorCleanupInterval = time.Minute

// multipartOverhead leaves room for form boundaries around the file part.
const multipartOverhead = 64 << 10

// Server is the dashboard HTTP API
type Server struct {
	echo    *echo.Echo
	config  *config.Config
	limiter *middleware.RateLimiter
}

// New builds the echo instance with middleware and routes registered.
// gatherer backs the /metrics endpoint.
func New(
	cfg *config.Config,
	db handlers.HealthChecker,
	dashboardService services.DashboardServiceInterface,
	gatherer prometheus.Gatherer,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(requestLogger())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, middleware.TraceIDHeader},
	}))

	limiter := middleware.NewRateLimiter(float64(cfg.Security.RateLimitPerSecond), cfg.Security.RateLimitBurst)

	healthHandler := handlers.NewHealthCheckHandler(db)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	datasetHandler := handlers.NewDatasetHandler(dashboardService, cfg.Upload.MaxBytes)
	datasets := e.Group("/api/v1/datasets")
	datasetHandler.RegisterRoutes(datasets,
		limiter.Middleware(),
		echomiddleware.BodyLimit(bodyLimit(cfg.Upload.MaxBytes+multipartOverhead)),
	)

	return &Server{
		echo:    e,
		config:  cfg,
		limiter: limiter,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.config.Server.Address(),
		Handler:      s.echo,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	limiterCtx, stopLimiter := context.WithCancel(ctx)
	defer stopLimiter()
	go s.limiter.Run(limiterCtx, visitorCleanupInterval)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "address", httpServer.Addr, "environment", s.config.Server.Environment)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server", "timeout", s.config.Server.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("Server stopped")
	return nil
}

func requestLogger() echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: false,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			slog.Log(c.Request().Context(), level, "request",
				"trace_id", middleware.GetTraceID(c),
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds())
			return nil
		},
	})
}

// bodyLimit renders a byte count in the form echo's BodyLimit parses.
func bodyLimit(bytes int64) string {
	return fmt.Sprintf("%dB", bytes)
}

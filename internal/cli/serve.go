package cli

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/config"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/database"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/repositories"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/server"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP API",
		Long: `serve starts the HTTP API. Settings come from the environment
(and a .env file when present): SERVER_PORT, DB_DRIVER, DB_DSN, FEE_RATE,
MAX_UPLOAD_BYTES, MAX_UPLOAD_ROWS, RATE_LIMIT_PER_SECOND and friends.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if port != "" {
				cfg.Server.Port = port
			}

			db, err := database.Initialize(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer func() {
				if err := db.Close(); err != nil {
					slog.Error("Failed to close database", "error", err)
				}
			}()

			dashboardService := services.NewDashboardService(
				repositories.NewDatasetRepository(db.DB),
				services.NewPrometheusMetrics(prometheus.DefaultRegisterer),
				services.NewGeneratorFactory(time.Now),
				services.DashboardConfig{
					FeeRate:             cfg.Scoring.FeeRate,
					DefaultTopMerchants: cfg.Scoring.DefaultTopMerchants,
					MaxUploadRows:       cfg.Upload.MaxRows,
				},
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, db, dashboardService, prometheus.DefaultGatherer).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Listen port (overrides SERVER_PORT)")
	return cmd
}

package serve

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/api/server"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app"
	appconfig "github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/config"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/logging"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/config"
)

var (
	host          string
	providersPath string
	staticDir     string
)

func init() {
	Cmd.Flags().StringVar(&host, "host", "0.0.0.0", "interface to listen on")
	Cmd.Flags().StringVarP(&providersPath, "providers", "p", "config/providers.yaml", "path to the providers config")
	Cmd.Flags().StringVar(&staticDir, "static", "web/static", "directory with the web UI, empty to disable")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the report API server and web UI",
	Long: `Start the report API server and web UI.

The server exposes the generation, revision, and save endpoints under
/api/v1/reports, a Prometheus scrape endpoint at /metrics, and the browser
UI at /ui.`,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	providers, err := appconfig.LoadProvidersConfig(providersPath)
	if err != nil {
		return fmt.Errorf("failed to load providers config: %w", err)
	}

	zapLogger := logging.MustNewLogger(cfg.Environment != "production")
	defer zapLogger.Sync()

	application, err := app.InitializeApplication(cfg, providers, zapLogger)
	if err != nil {
		return fmt.Errorf("failed to assemble application: %w", err)
	}
	defer application.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	srv := server.NewServer(server.Config{
		Host:        host,
		Port:        strconv.Itoa(cfg.Port),
		ReadTimeout: 30 * time.Second,
		// Provider calls during generation can run long.
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  2 * time.Minute,
		Environment:  cfg.Environment,
		StaticDir:    staticDir,
	}, application, logger)

	if err := srv.Start(); err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/leadscout-hq/leadscout/internal/api/handlers"
	"github.com/leadscout-hq/leadscout/internal/backend"
	"github.com/leadscout-hq/leadscout/internal/config"
	"github.com/leadscout-hq/leadscout/internal/search"
	"github.com/leadscout-hq/leadscout/internal/server"
	"github.com/leadscout-hq/leadscout/internal/telemetry"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the local bridge server",
		Long:  "Serves the search orchestrator over HTTP for the browser UI",
		RunE:  runServe,
	}

	cmd.Flags().StringP("port", "p", "", "Port to listen on (overrides LEADSCOUT_PORT)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if portFlag, _ := cmd.Flags().GetString("port"); portFlag != "" {
		cfg.Port = portFlag
	}

	if cfg.HasSentry() {
		shutdownTelemetry, err := telemetry.Init(telemetry.Config{
			DSN:         cfg.SentryDSN,
			Environment: cfg.Environment,
			Debug:       cfg.Debug,
		})
		if err == nil {
			defer shutdownTelemetry()
		}
	}

	logger, err := newServeLogger(cfg)
	if err != nil {
		return err
	}

	apiKey, apiURL, err := serveCredentials(cmd, cfg)
	if err != nil {
		return err
	}

	client := backend.New(apiURL, apiKey)
	searchHandler := handlers.NewSearchHandler(
		search.NewJobs(client.SearchJobs, logger),
		search.NewPeople(client.SearchPeople, logger),
	)

	router := server.NewRouter(server.RouterConfig{
		SearchHandler: searchHandler,
		Log:           logger,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("bridge server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info().Msg("server exited")
	return nil
}

// serveCredentials resolves the metered API credentials for the daemon:
// flags, then environment (covered by config), then the global config file.
func serveCredentials(cmd *cobra.Command, cfg *config.Config) (apiKey, apiURL string, err error) {
	if flagKey, _ := cmd.Flags().GetString("api-key"); flagKey != "" {
		cfg.APIKey = flagKey
	}
	if flagURL, _ := cmd.Flags().GetString("api-url"); flagURL != "" {
		cfg.APIURL = flagURL
	}

	apiKey = cfg.APIKey
	apiURL = cfg.APIURL

	if apiKey == "" {
		globalConfig, loadErr := LoadGlobalConfig()
		if loadErr == nil && globalConfig != nil {
			apiKey = globalConfig.APIKey
			if globalConfig.APIURL != "" {
				apiURL = globalConfig.APIURL
			}
		}
	}

	if apiKey == "" {
		return "", "", fmt.Errorf("%s not set (run 'leadscout auth login' or set environment variable)", envAPIKey)
	}
	return apiKey, apiURL, nil
}

func newServeLogger(cfg *config.Config) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	logger := zerolog.New(os.Stderr).With().
		Timestamp().
		Str("service", "leadscout").
		Logger().
		Level(level)

	if cfg.Debug {
		logger = logger.Level(zerolog.DebugLevel)
	}
	return logger, nil
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"kiosco/internal/api"
	"kiosco/internal/category"
	"kiosco/internal/config"
	"kiosco/internal/fetcher"
	"kiosco/internal/landing"
	"kiosco/internal/pipeline"
	"kiosco/internal/sources"
	"kiosco/internal/store"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	// Missing .env is fine; config falls back to real env vars.
	godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "kiosco",
		Short: "Kiosco serves an aggregated tech and business news feed",
		Long: `Kiosco aggregates technology, business, and startup news from US and
Mexican sources into a single deduplicated feed, cached with a TTL.

Sources include Hacker News, TechCrunch, The Verge, Wired, Crunchbase News,
Expansión, Forbes México, and the NewsData/NewsAPI aggregator APIs.`,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(refreshCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// serveCmd creates the "serve" subcommand.
func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the news feed over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			svc, closeFn, err := buildService(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer closeFn()

			srv := api.NewServer(cfg.API.Port, svc, logger)

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case sig := <-sigCh:
				logger.Info("received signal, shutting down", "signal", sig)
				return nil
			case err := <-errCh:
				return fmt.Errorf("api server: %w", err)
			}
		},
	}
}

// refreshCmd creates the "refresh" subcommand.
func refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Fetch all sources and overwrite the stored snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			svc, closeFn, err := buildService(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer closeFn()

			start := time.Now()
			snap, err := svc.Refresh(cmd.Context())
			if err != nil {
				return fmt.Errorf("refresh: %w", err)
			}

			fmt.Printf("Refreshed %d articles in %s\n", len(snap.Articles), time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
}

// showCmd creates the "show" subcommand.
func showCmd() *cobra.Command {
	var forceRefresh bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			svc, closeFn, err := buildService(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer closeFn()

			snap, err := svc.Get(cmd.Context(), forceRefresh)
			if err != nil {
				return fmt.Errorf("get snapshot: %w", err)
			}

			fmt.Printf("Generated: %s (%d articles)\n\n", snap.GeneratedAt.Format(time.RFC3339), len(snap.Articles))
			for i, a := range snap.Articles {
				fmt.Printf("%2d. %s\n", i+1, a.Title)
				fmt.Printf("    %s | %s\n", a.Source, a.URL)
				if a.Summary != "" {
					fmt.Printf("    %s\n", a.Summary)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&forceRefresh, "refresh", "r", false, "refresh before showing")
	return cmd
}

// configCmd creates the "config" subcommand for inspecting configuration.
func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			fmt.Printf("Fetch:\n")
			fmt.Printf("  Timeout:        %s\n", cfg.Fetch.Timeout)
			fmt.Printf("  Max Body Size:  %d bytes\n", cfg.Fetch.MaxBodySize)
			fmt.Printf("\nSnapshot:\n")
			fmt.Printf("  TTL:            %s\n", cfg.Snapshot.TTL)
			fmt.Printf("  Max Articles:   %d\n", cfg.Snapshot.MaxArticles)
			fmt.Printf("  Blocked Hosts:  %v\n", cfg.Snapshot.BlockedHosts)
			fmt.Printf("\nStore:\n")
			fmt.Printf("  Type:           %s\n", cfg.Store.Type)
			fmt.Printf("\nAPI:\n")
			fmt.Printf("  Port:           %d\n", cfg.API.Port)
			fmt.Printf("\nSources:\n")
			fmt.Printf("  NewsData key:   %v\n", cfg.Sources.NewsDataKey != "")
			fmt.Printf("  NewsAPI key:    %v\n", cfg.Sources.NewsAPIKey != "")
			return nil
		},
	}
}

// versionCmd creates the "version" subcommand.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Kiosco %s\n", config.Version)
		},
	}
}

// loadConfig loads and validates config and builds the logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, setupLogger(cfg), nil
}

// buildService wires fetcher, sources, pipeline, and store into the landing
// service. The returned close function releases the store and HTTP client.
func buildService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*landing.Service, func(), error) {
	client := fetcher.New(&cfg.Fetch, logger)

	overrides := make(map[string]category.Keywords, len(cfg.Categories))
	for name, lists := range cfg.Categories {
		overrides[name] = category.Keywords{English: lists.English, Spanish: lists.Spanish}
	}
	filter := category.NewFilter(overrides)

	jobs := sources.LandingJobs(client, filter, cfg, logger)
	norm := pipeline.NewNormalizer(cfg.Snapshot.BlockedHosts)
	agg := pipeline.NewAggregator(jobs, norm, cfg.Snapshot.MaxArticles, logger)

	snapStore, err := store.New(ctx, &cfg.Store, logger)
	if err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("create store: %w", err)
	}

	svc := landing.NewService(agg, snapStore, cfg.Snapshot.TTL, logger)

	closeFn := func() {
		if err := snapStore.Close(context.Background()); err != nil {
			logger.Warn("store close failed", "error", err)
		}
		client.Close()
	}
	return svc, closeFn, nil
}

// setupLogger creates a structured logger per the logging config.
func setupLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

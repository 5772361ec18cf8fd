package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/walletscan/internal/config"
	"github.com/nao1215/walletscan/internal/log"
	"github.com/nao1215/walletscan/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the walletscan HTTP API server",
		Long: `Serve starts an HTTP API exposing wallet analysis:

  GET /api/scan/:address?network=mainnet
  GET /api/health

The scan endpoint returns the same JSON payload as "scan --json".

Examples:
  # Serve on the default address
  walletscan serve

  # Serve on a custom address
  walletscan serve --addr :8080`,
		RunE: runServeCmd,
	}

	cmd.Flags().StringP("addr", "a", config.DefaultListenAddr,
		"Listen address for the HTTP server")
	cmd.Flags().StringP("network", "n", string(config.NetworkMainnet),
		"Default Solana cluster for scans (mainnet or devnet)")
	cmd.Flags().String("helius-api-key", "",
		"Helius API key (or set HELIUS_API_KEY)")
	cmd.Flags().String("birdeye-api-key", "",
		"Birdeye API key for portfolio data (or set BIRDEYE_API_KEY)")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each provider request")
	cmd.Flags().Bool("no-cache", false,
		"Disable the provider response cache")
	cmd.Flags().String("cache-dir", "",
		"Cache directory (default: XDG cache directory)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .walletscan in current or home directory)")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildServeConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if cfg.HeliusAPIKey == "" {
		return config.ErrMissingAPIKey
	}

	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cache := openCache(cfg, logger)
	if cache != nil {
		defer cache.Close()
	}

	srv := server.New(cfg, cache, server.WithLogger(logger))
	return srv.Run(ctx)
}

// buildServeConfig creates a Config from the serve command flags plus the
// shared environment and config-file sources.
func buildServeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ListenAddr, err = cmd.Flags().GetString("addr")
	if err != nil {
		return nil, err
	}

	network, err := cmd.Flags().GetString("network")
	if err != nil {
		return nil, err
	}
	cfg.Network = config.Network(network)

	cfg.HeliusAPIKey, err = cmd.Flags().GetString("helius-api-key")
	if err != nil {
		return nil, err
	}

	cfg.BirdeyeAPIKey, err = cmd.Flags().GetString("birdeye-api-key")
	if err != nil {
		return nil, err
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return nil, err
	}
	if !noCache {
		cfg.CacheDir, err = cmd.Flags().GetString("cache-dir")
		if err != nil {
			return nil, err
		}
		if cfg.CacheDir == "" {
			cfg.CacheDir = config.DefaultCacheDir()
		}
	}

	cfg.Verbose = getVerboseFlag(cmd)

	if err := applyConfigSources(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

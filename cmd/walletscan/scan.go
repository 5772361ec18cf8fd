package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/walletscan/internal/analyze"
	"github.com/nao1215/walletscan/internal/config"
	"github.com/nao1215/walletscan/internal/database"
	"github.com/nao1215/walletscan/internal/labels"
	"github.com/nao1215/walletscan/internal/log"
	"github.com/nao1215/walletscan/internal/model"
	"github.com/nao1215/walletscan/internal/pipeline"
	"github.com/nao1215/walletscan/internal/provider"
	"github.com/nao1215/walletscan/internal/report"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [wallet-address...]",
		Short: "Analyze the privacy exposure of Solana wallets",
		Long: `Scan fetches public on-chain data for each wallet address and scores
its privacy exposure:
- Exchange linkage (direct transfers to/from custodial exchanges)
- Behavioral fingerprint (transaction volume and cadence)
- Counterparty clustering (distinct interaction partners)
- Identity artifacts (name-service domains, social handles, NFT metadata)
- Wealth visibility (estimated net worth)

Examples:
  # Scan a single wallet
  walletscan scan JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4

  # Scan multiple wallets sequentially
  walletscan scan addr1 addr2 addr3

  # Scan on devnet with JSON output
  walletscan scan --network devnet --json addr1

  # Write a Markdown report to a file
  walletscan scan --markdown -o report.md addr1

Configuration file (.walletscan) example:
  helius_api_key: "xxxx"
  birdeye_api_key: "yyyy"
  network: mainnet
  labels:
    exchanges:
      "5tzFkiKscXHK5ZXCGbXZxdw7gTjjD1mBwuoFbhUvuAi9": Binance`,
		Args: cobra.ArbitraryArgs,
		RunE: runScanCmd,
	}

	// Provider flags
	cmd.Flags().StringP("network", "n", string(config.NetworkMainnet),
		"Solana cluster to analyze against (mainnet or devnet)")
	cmd.Flags().String("helius-api-key", "",
		"Helius API key (or set HELIUS_API_KEY)")
	cmd.Flags().String("birdeye-api-key", "",
		"Birdeye API key for portfolio data (or set BIRDEYE_API_KEY)")

	// Scan behavior flags
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each provider request")
	cmd.Flags().IntP("limit", "l", config.DefaultTransactionLimit,
		"Maximum number of transactions to fetch per wallet")

	// Cache flags
	cmd.Flags().Bool("no-cache", false,
		"Disable the provider response cache")
	cmd.Flags().String("cache-dir", "",
		"Cache directory (default: XDG cache directory)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .walletscan in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with credential masking
	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return runScan(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags, the environment,
// and the optional configuration file. Precedence: flags, then environment
// variables (including .env files), then the config file, then defaults.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

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

	cfg.TransactionLimit, err = cmd.Flags().GetInt("limit")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
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
	cfg.Targets = args

	if err := applyConfigSources(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyConfigSources fills unset Config fields from .env files, the
// process environment, and the configuration file, in that order.
// If the user explicitly specified a config file path, a missing file is
// an error; otherwise the file is optional.
func applyConfigSources(cfg *config.Config) error {
	config.LoadEnv()
	cfg.ApplyEnv()

	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyFile(cf)
	} else if explicitConfigPath {
		return fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}
	return nil
}

// openCache opens the provider response cache, or returns nil when
// caching is disabled. Cache failures are reported but never fatal;
// scans work without a cache.
func openCache(cfg *config.Config, logger *slog.Logger) *database.Cache {
	if cfg.CacheDir == "" {
		return nil
	}

	cache, err := database.OpenCache(cfg.CacheDir,
		database.WithCacheTTL(cfg.CacheTTL),
	)
	if err != nil {
		logger.Warn("cache unavailable, continuing without it",
			slog.String("dir", cfg.CacheDir),
			slog.Any("error", err))
		return nil
	}
	return cache
}

// runScan executes the scan for all targets sequentially.
func runScan(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if len(cfg.Targets) == 0 {
		return config.ErrNoTarget
	}
	if cfg.HeliusAPIKey == "" {
		return config.ErrMissingAPIKey
	}

	logger.Info("starting scan",
		slog.Int("targets", len(cfg.Targets)),
		slog.String("network", string(cfg.Network)),
	)

	cache := openCache(cfg, logger)
	if cache != nil {
		defer cache.Close()
	}

	registry := labels.NewRegistry(cfg.CustomExchangeLabels, cfg.CustomProtocolLabels)
	analyzer := analyze.NewAnalyzer(registry)
	providers := provider.NewSet(cfg, cfg.Network, logger)

	var failures int
	for _, target := range cfg.Targets {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		address, err := model.NewAddress(target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid wallet address %q: %v\n", target, err)
			failures++
			continue
		}

		fmt.Printf("Scanning %s...\n", address.Short())
		startTime := time.Now()

		scanReport, err := scanOne(ctx, cfg, providers, analyzer, cache, address, logger)
		if err != nil {
			if errors.Is(err, pipeline.ErrNoData) {
				fmt.Fprintf(os.Stderr, "No on-chain data found for %s\n", address.Short())
			} else {
				fmt.Fprintf(os.Stderr, "Scan error for %s: %v\n", address.Short(), err)
			}
			failures++
			continue
		}

		elapsed := time.Since(startTime)
		fmt.Printf("Scan completed in %s\n\n", elapsed.Round(time.Millisecond))

		if err := outputReport(cfg, scanReport); err != nil {
			logger.Error("report failed",
				slog.String("target", address.Short()),
				slog.Any("error", err))
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d scans failed", failures, len(cfg.Targets))
	}
	return nil
}

// scanOne runs the fetch-and-analyze pipeline for a single wallet.
func scanOne(ctx context.Context, cfg *config.Config, providers *provider.Set, analyzer *analyze.Analyzer, cache *database.Cache, address model.Address, logger *slog.Logger) (*model.ExposureReport, error) {
	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(
		pipeline.NewFetchStep(providers,
			pipeline.WithFetchCache(cache),
			pipeline.WithFetchLogger(logger),
		),
		pipeline.NewAnalyzeStep(analyzer,
			pipeline.WithAnalyzeLogger(logger),
		),
	)

	scan := pipeline.NewScan(address, cfg.Network)
	if err := p.Execute(ctx, scan); err != nil {
		return nil, err
	}
	return scan.Report, nil
}

// outputReport outputs the exposure report in the requested format.
func outputReport(cfg *config.Config, scanReport *model.ExposureReport) error {
	if cfg.ReportFile == "" {
		return writeReport(cfg, scanReport, os.Stdout)
	}

	// Create directories if they don't exist
	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Reports expose wallet intelligence, so keep them owner-readable only.
	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := writeReport(cfg, scanReport, f); err != nil {
		_ = f.Close()
		return err
	}
	// A flush failure on close means a truncated report; it must not
	// pass as success.
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to finalize output file: %w", err)
	}
	return nil
}

// writeReport writes the report to output in the configured format.
func writeReport(cfg *config.Config, scanReport *model.ExposureReport, output io.Writer) error {
	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}

	_, err := writer.Write(scanReport)
	return err
}

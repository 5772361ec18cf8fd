package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultTimeout is the per-request timeout for outbound provider
	// calls. Providers are public HTTPS APIs; 15 seconds is generous
	// enough for slow pagination while still bounding a stalled analysis.
	DefaultTimeout = 15 * time.Second

	// DefaultTransactionLimit caps the combined transaction history
	// fetched per wallet. Bounding the history bounds analyzer cost:
	// every analyzer is linear in the number of transactions.
	DefaultTransactionLimit = 500

	// DefaultTransactionPageSize is the page size used when paginating
	// the transaction history API.
	DefaultTransactionPageSize = 100

	// DefaultCacheTTL is how long a cached provider bundle stays fresh.
	// Five minutes matches how quickly wallet activity can change while
	// still absorbing bursts of repeat scans.
	DefaultCacheTTL = 5 * time.Minute

	// DefaultCacheCapacity is the maximum number of cached bundles.
	// When exceeded, the oldest entries are evicted first.
	DefaultCacheCapacity = 256

	// DefaultListenAddr is the bind address for the HTTP API server.
	DefaultListenAddr = ":3001"

	// AppName is the application name used for XDG directory paths.
	AppName = "walletscan"
)

// Network selects which Solana cluster providers talk to.
// It is request-scoped configuration: the serve handler may override the
// process default per request, so nothing caches a "current network".
type Network string

const (
	// NetworkMainnet is the Solana mainnet-beta cluster.
	NetworkMainnet Network = "mainnet"
	// NetworkDevnet is the Solana devnet cluster.
	NetworkDevnet Network = "devnet"
)

// Valid reports whether the network is a supported cluster name.
func (n Network) Valid() bool {
	return n == NetworkMainnet || n == NetworkDevnet
}

// Config holds all configuration options for walletscan.
// It is populated from CLI flags, environment variables, and the optional
// YAML config file, then passed through the application via dependency
// injection rather than global state.
type Config struct {
	// Network is the default Solana cluster to analyze against.
	Network Network

	// HeliusAPIKey authenticates the transaction/asset/balance provider.
	// Required for any real scan.
	HeliusAPIKey string

	// BirdeyeAPIKey authenticates the optional portfolio PnL provider.
	// When empty, portfolio data is skipped and the financial analyzer
	// falls back to the naive asset-value sum.
	BirdeyeAPIKey string

	// Timeout is the per-request timeout for each outbound provider call.
	Timeout time.Duration

	// TransactionLimit caps the combined transaction history per wallet.
	TransactionLimit int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON report output instead of human-readable
	// format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string

	// Targets is the list of wallet addresses to analyze.
	Targets []string

	// CacheDir is the directory for the provider-response cache database.
	// When empty, caching is disabled.
	CacheDir string

	// CacheTTL is how long cached provider bundles stay fresh.
	CacheTTL time.Duration

	// ListenAddr is the bind address for the serve command.
	ListenAddr string

	// ConfigFilePath is the path to the configuration file. If empty,
	// the tool searches for .walletscan in the current directory and
	// then in the user's home directory.
	ConfigFilePath string

	// CustomExchangeLabels merges operator-supplied exchange address
	// labels into the built-in registry.
	CustomExchangeLabels map[string]string

	// CustomProtocolLabels merges operator-supplied protocol address
	// labels into the built-in registry.
	CustomProtocolLabels map[string]string
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Network:          NetworkMainnet,
		Timeout:          DefaultTimeout,
		TransactionLimit: DefaultTransactionLimit,
		CacheTTL:         DefaultCacheTTL,
		ListenAddr:       DefaultListenAddr,
	}
}

// DefaultCacheDir returns the XDG cache directory for walletscan
// (e.g. ~/.cache/walletscan on Linux).
func DefaultCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// Validate checks the configuration for consistency.
// It returns a sentinel error describing the first problem found.
func (c *Config) Validate() error {
	if !c.Network.Valid() {
		return ErrInvalidNetwork
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.TransactionLimit <= 0 {
		return ErrInvalidTransactionLimit
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}

package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoTarget is returned when no wallet address is specified.
	ErrNoTarget = errors.New("no target specified: provide a wallet address")

	// ErrInvalidNetwork is returned when the network is not a supported
	// cluster name. Valid values are "mainnet" and "devnet".
	ErrInvalidNetwork = errors.New("invalid network: use \"mainnet\" or \"devnet\"")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidTransactionLimit is returned when the transaction limit
	// is not positive. A limit of zero would make every analysis empty.
	ErrInvalidTransactionLimit = errors.New("invalid transaction limit: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrMissingAPIKey is returned when no Helius API key is configured.
	// The primary data providers cannot be queried without one.
	ErrMissingAPIKey = errors.New("missing API key: set HELIUS_API_KEY or the helius_api_key config entry")
)

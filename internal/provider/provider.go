package provider

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/nao1215/walletscan/internal/config"
	"github.com/nao1215/walletscan/internal/model"
)

// TransactionProvider fetches the enriched transaction history of a wallet.
// Implementations paginate internally and return a single combined list,
// newest first, capped at the configured transaction limit.
type TransactionProvider interface {
	// Transactions returns the transaction history for the address.
	Transactions(ctx context.Context, address model.Address) ([]model.Transaction, error)
}

// AssetProvider fetches the assets owned by a wallet.
type AssetProvider interface {
	// Assets returns the owned-asset records for the address.
	Assets(ctx context.Context, address model.Address) ([]model.Asset, error)
}

// BalanceProvider fetches the native SOL balance of a wallet.
type BalanceProvider interface {
	// Balance returns the native balance in SOL.
	Balance(ctx context.Context, address model.Address) (float64, error)
}

// NameRegistryProvider resolves name-service domains owned by a wallet.
type NameRegistryProvider interface {
	// Domains returns the owned domain names without the ".sol" suffix.
	// An address with no domains yields an empty slice, not an error.
	Domains(ctx context.Context, address model.Address) ([]string, error)
}

// SocialLinkProvider resolves social handles linked to a wallet or to one
// of its name-service domains.
type SocialLinkProvider interface {
	// HandleForAddress returns the linked social handle for the address,
	// or empty when none is registered.
	HandleForAddress(ctx context.Context, address model.Address) (string, error)

	// HandleForDomain returns the linked social handle for a domain,
	// or empty when none is registered.
	HandleForDomain(ctx context.Context, domain string) (string, error)
}

// PortfolioProvider fetches optional portfolio PnL data.
// The provider may be disabled entirely; check Enabled before fetching.
type PortfolioProvider interface {
	// Enabled reports whether the provider is configured.
	Enabled() bool

	// Portfolio returns aggregated PnL data for the address.
	// Returns nil without error when no data is available.
	Portfolio(ctx context.Context, address model.Address) (*model.PortfolioPnL, error)
}

// Set bundles the providers used by one analysis run.
// A Set is cheap to construct, so the HTTP handler builds one per request
// with the request's network, so network selection never lives in shared
// mutable state.
type Set struct {
	// Transactions fetches transaction history.
	Transactions TransactionProvider

	// Assets fetches owned assets.
	Assets AssetProvider

	// Balance fetches the native balance.
	Balance BalanceProvider

	// Names resolves name-service domains.
	Names NameRegistryProvider

	// Social resolves linked social handles.
	Social SocialLinkProvider

	// Portfolio fetches optional PnL data.
	Portfolio PortfolioProvider
}

// NewSet constructs the production provider set for the given network.
// All clients share one HTTP client carrying the configured timeout.
func NewSet(cfg *config.Config, network config.Network, logger *slog.Logger) *Set {
	if logger == nil {
		logger = slog.Default()
	}
	httpClient := &http.Client{Timeout: cfg.Timeout}

	helius := NewHeliusClient(cfg.HeliusAPIKey, network,
		WithHeliusHTTPClient(httpClient),
		WithHeliusTransactionLimit(cfg.TransactionLimit),
		WithHeliusLogger(logger),
	)
	bonfida := NewBonfidaClient(
		WithBonfidaHTTPClient(httpClient),
		WithBonfidaLogger(logger),
	)
	birdeye := NewBirdeyeClient(cfg.BirdeyeAPIKey,
		WithBirdeyeHTTPClient(httpClient),
		WithBirdeyeLogger(logger),
	)

	return &Set{
		Transactions: helius,
		Assets:       helius,
		Balance:      helius,
		Names:        bonfida,
		Social:       bonfida,
		Portfolio:    birdeye,
	}
}

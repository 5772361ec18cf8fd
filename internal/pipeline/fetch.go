package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/walletscan/internal/database"
	"github.com/nao1215/walletscan/internal/model"
	"github.com/nao1215/walletscan/internal/provider"
)

// Bundle is the raw provider data fetched for one scan. It is the unit
// of caching: raw data only, never derived scores.
type Bundle struct {
	// Transactions is the transaction history, newest first.
	Transactions []model.Transaction `json:"transactions"`

	// Assets is the owned-asset list.
	Assets []model.Asset `json:"assets"`

	// Balance is the native balance in SOL.
	Balance float64 `json:"balance"`

	// Domains lists owned name-service domains, without suffix.
	Domains []string `json:"domains"`

	// Handles lists linked social handles, deduplicated.
	Handles []string `json:"handles"`

	// Portfolio is optional PnL data, nil when unavailable.
	Portfolio *model.PortfolioPnL `json:"portfolio,omitempty"`
}

// empty reports whether every primary signal is absent at once.
// Domains, handles, and portfolio are secondary: they cannot exist for a
// wallet with no transactions, assets, or balance.
func (b *Bundle) empty() bool {
	return len(b.Transactions) == 0 && len(b.Assets) == 0 && b.Balance == 0
}

// FetchStep gathers provider data for the scanned wallet. All primary
// fetches fan out concurrently; a second wave resolves a social handle
// per discovered domain. Individual provider failures substitute empty
// defaults so one flaky provider never aborts the scan.
type FetchStep struct {
	providers *provider.Set
	cache     *database.Cache
	logger    *slog.Logger
}

// FetchStepOption configures a FetchStep.
type FetchStepOption func(*FetchStep)

// WithFetchCache enables the provider-response cache. A nil cache leaves
// caching disabled.
func WithFetchCache(cache *database.Cache) FetchStepOption {
	return func(s *FetchStep) {
		s.cache = cache
	}
}

// WithFetchLogger sets a custom logger for the fetch step.
func WithFetchLogger(logger *slog.Logger) FetchStepOption {
	return func(s *FetchStep) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewFetchStep creates a FetchStep over the given provider set.
func NewFetchStep(providers *provider.Set, opts ...FetchStepOption) *FetchStep {
	s := &FetchStep{
		providers: providers,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *FetchStep) Name() string {
	return "fetch"
}

// Do fetches the provider bundle, consulting the cache first, and fails
// with ErrNoData when every primary signal is empty.
func (s *FetchStep) Do(ctx context.Context, scan *Scan) error {
	key := string(scan.Network) + ":" + scan.Address.String()

	bundle, cached := s.fromCache(ctx, key)
	if !cached {
		bundle = s.fetch(ctx, scan)
		s.toCache(ctx, key, bundle)
	}

	if bundle.empty() {
		return fmt.Errorf("%w: %s", ErrNoData, scan.Address.Short())
	}

	scan.Input.Transactions = bundle.Transactions
	scan.Input.Assets = bundle.Assets
	scan.Input.Balance = bundle.Balance
	scan.Input.Domains = bundle.Domains
	scan.Input.Handles = bundle.Handles
	scan.Input.Portfolio = bundle.Portfolio
	return nil
}

// fetch runs the two fan-out waves against the providers.
func (s *FetchStep) fetch(ctx context.Context, scan *Scan) *Bundle {
	bundle := &Bundle{
		Transactions: []model.Transaction{},
		Assets:       []model.Asset{},
		Domains:      []string{},
		Handles:      []string{},
	}
	address := scan.Address

	var addressHandle string
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		transactions, err := s.providers.Transactions.Transactions(groupCtx, address)
		if err != nil {
			s.fallback("transactions", address, err)
			return nil
		}
		bundle.Transactions = transactions
		return nil
	})
	group.Go(func() error {
		assets, err := s.providers.Assets.Assets(groupCtx, address)
		if err != nil {
			s.fallback("assets", address, err)
			return nil
		}
		bundle.Assets = assets
		return nil
	})
	group.Go(func() error {
		balance, err := s.providers.Balance.Balance(groupCtx, address)
		if err != nil {
			s.fallback("balance", address, err)
			return nil
		}
		bundle.Balance = balance
		return nil
	})
	group.Go(func() error {
		domains, err := s.providers.Names.Domains(groupCtx, address)
		if err != nil {
			s.fallback("domains", address, err)
			return nil
		}
		bundle.Domains = domains
		return nil
	})
	group.Go(func() error {
		handle, err := s.providers.Social.HandleForAddress(groupCtx, address)
		if err != nil {
			s.fallback("handle", address, err)
			return nil
		}
		addressHandle = handle
		return nil
	})
	group.Go(func() error {
		if !s.providers.Portfolio.Enabled() {
			return nil
		}
		portfolio, err := s.providers.Portfolio.Portfolio(groupCtx, address)
		if err != nil {
			s.fallback("portfolio", address, err)
			return nil
		}
		bundle.Portfolio = portfolio
		return nil
	})

	// Goroutines report failures through fallback defaults, never as
	// group errors, so Wait cannot fail here.
	_ = group.Wait()

	bundle.Handles = s.resolveHandles(ctx, addressHandle, bundle.Domains)
	return bundle
}

// resolveHandles runs the second fan-out wave: one handle lookup per
// discovered domain, merged with the wallet-level handle. Each goroutine
// writes its own slot, so no lock is needed; merge order is fixed so the
// result is deterministic.
func (s *FetchStep) resolveHandles(ctx context.Context, addressHandle string, domains []string) []string {
	domainHandles := make([]string, len(domains))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, domain := range domains {
		group.Go(func() error {
			handle, err := s.providers.Social.HandleForDomain(groupCtx, domain)
			if err != nil {
				s.logger.Warn("domain handle lookup failed, skipping",
					slog.String("domain", domain),
					slog.Any("error", err))
				return nil
			}
			domainHandles[i] = handle
			return nil
		})
	}
	_ = group.Wait()

	seen := make(map[string]struct{})
	handles := make([]string, 0, len(domains)+1)
	for _, handle := range append([]string{addressHandle}, domainHandles...) {
		if handle == "" {
			continue
		}
		if _, dup := seen[handle]; dup {
			continue
		}
		seen[handle] = struct{}{}
		handles = append(handles, handle)
	}
	return handles
}

// fallback logs a provider failure that was recovered with a default.
func (s *FetchStep) fallback(name string, address model.Address, err error) {
	s.logger.Warn("provider fetch failed, using empty default",
		slog.String("provider", name),
		slog.String("address", address.Short()),
		slog.Any("error", err))
}

// fromCache loads a cached bundle, returning false on miss, disabled
// cache, or a malformed entry.
func (s *FetchStep) fromCache(ctx context.Context, key string) (*Bundle, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache read failed", slog.Any("error", err))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var bundle Bundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		s.logger.Warn("cache entry malformed, refetching", slog.Any("error", err))
		return nil, false
	}
	s.logger.Debug("cache hit", slog.String("key", key))
	return &bundle, true
}

// toCache stores a fetched bundle. Cache failures only cost future hits.
func (s *FetchStep) toCache(ctx context.Context, key string, bundle *Bundle) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(bundle)
	if err != nil {
		s.logger.Warn("cache encode failed", slog.Any("error", err))
		return
	}
	if err := s.cache.Put(ctx, key, raw); err != nil {
		s.logger.Warn("cache write failed", slog.Any("error", err))
	}
}

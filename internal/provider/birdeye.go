package provider

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/nao1215/walletscan/internal/model"
)

// defaultBirdeyeBaseURL is the public Birdeye API.
const defaultBirdeyeBaseURL = "https://public-api.birdeye.so"

// BirdeyeClient fetches wallet portfolio PnL data. The client is optional:
// without an API key it reports itself disabled and the financial analyzer
// falls back to the naive asset-value sum. It implements PortfolioProvider.
type BirdeyeClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// BirdeyeOption configures a BirdeyeClient.
type BirdeyeOption func(*BirdeyeClient)

// WithBirdeyeHTTPClient sets the HTTP client used for requests.
func WithBirdeyeHTTPClient(client *http.Client) BirdeyeOption {
	return func(c *BirdeyeClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBirdeyeLogger sets the logger for request diagnostics.
func WithBirdeyeLogger(logger *slog.Logger) BirdeyeOption {
	return func(c *BirdeyeClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithBirdeyeBaseURL overrides the API endpoint. Used by tests.
func WithBirdeyeBaseURL(baseURL string) BirdeyeOption {
	return func(c *BirdeyeClient) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// NewBirdeyeClient returns a BirdeyeClient. An empty API key yields a
// disabled client.
func NewBirdeyeClient(apiKey string, opts ...BirdeyeOption) *BirdeyeClient {
	c := &BirdeyeClient{
		apiKey:     apiKey,
		baseURL:    defaultBirdeyeBaseURL,
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Enabled reports whether an API key is configured.
func (c *BirdeyeClient) Enabled() bool {
	return c.apiKey != ""
}

// birdeyePnLItem is one per-token entry of the wallet PnL endpoint.
type birdeyePnLItem struct {
	Address       string  `json:"address"`
	Symbol        string  `json:"symbol"`
	RealizedPnL   float64 `json:"realizedPnl"`
	UnrealizedPnL float64 `json:"unrealizedPnl"`
	HoldingValue  float64 `json:"holdingValue"`
}

// Portfolio returns aggregated PnL data for the address. A disabled
// client and a wallet without trade history both yield nil without error.
func (c *BirdeyeClient) Portfolio(ctx context.Context, address model.Address) (*model.PortfolioPnL, error) {
	if !c.Enabled() {
		return nil, nil
	}

	endpoint := fmt.Sprintf("%s/wallet/v2/pnl?wallet=%s", c.baseURL, address)
	header := http.Header{
		"X-API-KEY": []string{c.apiKey},
		"x-chain":   []string{"solana"},
		"Accept":    []string{"application/json"},
	}

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Items []birdeyePnLItem `json:"items"`
		} `json:"data"`
	}
	if err := getJSON(ctx, c.httpClient, endpoint, header, &response); err != nil {
		return nil, fmt.Errorf("birdeye pnl: %w", err)
	}
	if !response.Success || len(response.Data.Items) == 0 {
		return nil, nil
	}

	pnl := &model.PortfolioPnL{
		Tokens: make([]model.PortfolioToken, 0, len(response.Data.Items)),
	}
	for _, item := range response.Data.Items {
		pnl.TotalRealizedPnL += item.RealizedPnL
		pnl.TotalUnrealizedPnL += item.UnrealizedPnL
		pnl.Tokens = append(pnl.Tokens, model.PortfolioToken{
			Address:       item.Address,
			Symbol:        item.Symbol,
			RealizedPnL:   item.RealizedPnL,
			UnrealizedPnL: item.UnrealizedPnL,
			HoldingValue:  item.HoldingValue,
		})
	}
	pnl.TotalPnL = pnl.TotalRealizedPnL + pnl.TotalUnrealizedPnL

	c.logger.Debug("fetched portfolio pnl",
		slog.String("address", address.Short()),
		slog.Int("tokens", len(pnl.Tokens)))
	return pnl, nil
}

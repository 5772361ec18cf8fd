package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/nao1215/walletscan/internal/config"
	"github.com/nao1215/walletscan/internal/model"
)

// Helius endpoint pairs per cluster. The enhanced-transaction API and the
// JSON-RPC/DAS API live on different hosts.
var heliusEndpoints = map[config.Network]struct {
	api string
	rpc string
}{
	config.NetworkMainnet: {
		api: "https://api.helius.xyz",
		rpc: "https://mainnet.helius-rpc.com",
	},
	config.NetworkDevnet: {
		api: "https://api-devnet.helius.xyz",
		rpc: "https://devnet.helius-rpc.com",
	},
}

// assetPageLimit is the page size for the DAS getAssetsByOwner call.
// One page of 1000 covers all but the most extreme wallets.
const assetPageLimit = 1000

// HeliusClient fetches transaction history, owned assets, and the native
// balance from the Helius API. It implements TransactionProvider,
// AssetProvider, and BalanceProvider.
type HeliusClient struct {
	apiKey     string
	apiBase    string
	rpcBase    string
	httpClient *http.Client
	limit      int
	pageSize   int
	logger     *slog.Logger
}

// HeliusOption configures a HeliusClient.
type HeliusOption func(*HeliusClient)

// WithHeliusHTTPClient sets the HTTP client used for requests.
func WithHeliusHTTPClient(client *http.Client) HeliusOption {
	return func(c *HeliusClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithHeliusTransactionLimit caps the combined transaction history
// fetched across pages.
func WithHeliusTransactionLimit(limit int) HeliusOption {
	return func(c *HeliusClient) {
		if limit > 0 {
			c.limit = limit
		}
	}
}

// WithHeliusLogger sets the logger for request diagnostics.
func WithHeliusLogger(logger *slog.Logger) HeliusOption {
	return func(c *HeliusClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHeliusBaseURLs overrides both endpoint hosts. Used by tests to point
// the client at a local server.
func WithHeliusBaseURLs(apiBase, rpcBase string) HeliusOption {
	return func(c *HeliusClient) {
		if apiBase != "" {
			c.apiBase = apiBase
		}
		if rpcBase != "" {
			c.rpcBase = rpcBase
		}
	}
}

// NewHeliusClient returns a HeliusClient for the given network.
func NewHeliusClient(apiKey string, network config.Network, opts ...HeliusOption) *HeliusClient {
	endpoints, ok := heliusEndpoints[network]
	if !ok {
		endpoints = heliusEndpoints[config.NetworkMainnet]
	}

	c := &HeliusClient{
		apiKey:     apiKey,
		apiBase:    endpoints.api,
		rpcBase:    endpoints.rpc,
		httpClient: http.DefaultClient,
		limit:      config.DefaultTransactionLimit,
		pageSize:   config.DefaultTransactionPageSize,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Transactions returns the enhanced transaction history for the address,
// newest first. It pages backwards through history with the before cursor
// until the configured limit is reached or the history is exhausted.
func (c *HeliusClient) Transactions(ctx context.Context, address model.Address) ([]model.Transaction, error) {
	transactions := make([]model.Transaction, 0, c.pageSize)
	before := ""

	for len(transactions) < c.limit {
		pageSize := c.pageSize
		if remaining := c.limit - len(transactions); remaining < pageSize {
			pageSize = remaining
		}

		page, err := c.transactionPage(ctx, address, pageSize, before)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, page...)

		if len(page) < pageSize {
			break
		}
		before = page[len(page)-1].Signature
	}

	c.logger.Debug("fetched transaction history",
		slog.String("address", address.Short()),
		slog.Int("count", len(transactions)))
	return transactions, nil
}

// transactionPage fetches one page of the enhanced-transaction API.
func (c *HeliusClient) transactionPage(ctx context.Context, address model.Address, limit int, before string) ([]model.Transaction, error) {
	query := url.Values{}
	query.Set("api-key", c.apiKey)
	query.Set("limit", fmt.Sprintf("%d", limit))
	if before != "" {
		query.Set("before", before)
	}
	endpoint := fmt.Sprintf("%s/v0/addresses/%s/transactions?%s", c.apiBase, address, query.Encode())

	var page []model.Transaction
	if err := getJSON(ctx, c.httpClient, endpoint, nil, &page); err != nil {
		return nil, fmt.Errorf("helius transactions: %w", err)
	}
	return page, nil
}

// rpcRequest is the JSON-RPC 2.0 request envelope.
type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

// rpcResponse is the JSON-RPC 2.0 response envelope.
type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error,omitempty"`
}

// rpcError is the error object of a failed JSON-RPC call.
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Assets returns the assets owned by the address via the DAS
// getAssetsByOwner method, fungible tokens and native balance included.
func (c *HeliusClient) Assets(ctx context.Context, address model.Address) ([]model.Asset, error) {
	params := map[string]any{
		"ownerAddress": address.String(),
		"page":         1,
		"limit":        assetPageLimit,
		"displayOptions": map[string]any{
			"showFungible":      true,
			"showNativeBalance": true,
		},
	}

	var result struct {
		Items []model.Asset `json:"items"`
	}
	if err := c.rpc(ctx, "getAssetsByOwner", params, &result); err != nil {
		return nil, fmt.Errorf("helius assets: %w", err)
	}

	c.logger.Debug("fetched owned assets",
		slog.String("address", address.Short()),
		slog.Int("count", len(result.Items)))
	return result.Items, nil
}

// Balance returns the native balance in SOL.
func (c *HeliusClient) Balance(ctx context.Context, address model.Address) (float64, error) {
	var result struct {
		Value uint64 `json:"value"`
	}
	if err := c.rpc(ctx, "getBalance", []string{address.String()}, &result); err != nil {
		return 0, fmt.Errorf("helius balance: %w", err)
	}
	return float64(result.Value) / model.LamportsPerSOL, nil
}

// rpc executes one JSON-RPC call against the Helius RPC endpoint and
// decodes the result field into out.
func (c *HeliusClient) rpc(ctx context.Context, method string, params, out any) error {
	endpoint := fmt.Sprintf("%s/?api-key=%s", c.rpcBase, url.QueryEscape(c.apiKey))
	request := rpcRequest{
		JSONRPC: "2.0",
		ID:      config.AppName,
		Method:  method,
		Params:  params,
	}

	var response rpcResponse
	if err := postJSON(ctx, c.httpClient, endpoint, request, &response); err != nil {
		return err
	}
	if response.Error != nil {
		return fmt.Errorf("%w: %s (%d)", ErrRPCFailure, response.Error.Message, response.Error.Code)
	}
	if response.Result == nil {
		return nil
	}
	if err := json.Unmarshal(response.Result, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return nil
}

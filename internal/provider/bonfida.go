package provider

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/nao1215/walletscan/internal/model"
)

// defaultBonfidaBaseURL is the Bonfida SNS SDK proxy. It exposes the
// name-service registry and the linked-handle registry over plain HTTPS
// without an API key.
const defaultBonfidaBaseURL = "https://sns-sdk-proxy.bonfida.workers.dev"

// BonfidaClient resolves Solana Name Service domains and linked social
// handles. It implements NameRegistryProvider and SocialLinkProvider.
type BonfidaClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// BonfidaOption configures a BonfidaClient.
type BonfidaOption func(*BonfidaClient)

// WithBonfidaHTTPClient sets the HTTP client used for requests.
func WithBonfidaHTTPClient(client *http.Client) BonfidaOption {
	return func(c *BonfidaClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBonfidaLogger sets the logger for request diagnostics.
func WithBonfidaLogger(logger *slog.Logger) BonfidaOption {
	return func(c *BonfidaClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithBonfidaBaseURL overrides the proxy endpoint. Used by tests.
func WithBonfidaBaseURL(baseURL string) BonfidaOption {
	return func(c *BonfidaClient) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// NewBonfidaClient returns a BonfidaClient against the public SNS proxy.
func NewBonfidaClient(opts ...BonfidaOption) *BonfidaClient {
	c := &BonfidaClient{
		baseURL:    defaultBonfidaBaseURL,
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// bonfidaEnvelope is the proxy's response wrapper. Status is "ok" on
// success; lookups that find nothing come back with an error status
// rather than an empty result.
type bonfidaEnvelope[T any] struct {
	Status string `json:"s"`
	Result T      `json:"result"`
}

// ok reports whether the lookup succeeded.
func (e bonfidaEnvelope[T]) ok() bool {
	return e.Status == "ok"
}

// Domains returns the SNS domains owned by the address, without the
// ".sol" suffix. A wallet with no domains yields an empty slice.
func (c *BonfidaClient) Domains(ctx context.Context, address model.Address) ([]string, error) {
	endpoint := fmt.Sprintf("%s/domains/%s", c.baseURL, address)

	var envelope bonfidaEnvelope[[]struct {
		Key    string `json:"key"`
		Domain string `json:"domain"`
	}]
	if err := getJSON(ctx, c.httpClient, endpoint, nil, &envelope); err != nil {
		return nil, fmt.Errorf("bonfida domains: %w", err)
	}
	if !envelope.ok() {
		return []string{}, nil
	}

	domains := make([]string, 0, len(envelope.Result))
	for _, entry := range envelope.Result {
		name := strings.TrimSuffix(entry.Domain, ".sol")
		if name != "" {
			domains = append(domains, name)
		}
	}

	c.logger.Debug("resolved name-service domains",
		slog.String("address", address.Short()),
		slog.Int("count", len(domains)))
	return domains, nil
}

// HandleForAddress returns the social handle registered directly against
// the wallet in the linked-handle registry, or empty when none exists.
func (c *BonfidaClient) HandleForAddress(ctx context.Context, address model.Address) (string, error) {
	endpoint := fmt.Sprintf("%s/twitter/get-handle-by-key/%s", c.baseURL, address)
	return c.handle(ctx, endpoint)
}

// HandleForDomain returns the social handle stored in the domain's
// twitter record, or empty when the record is absent.
func (c *BonfidaClient) HandleForDomain(ctx context.Context, domain string) (string, error) {
	name := strings.TrimSuffix(domain, ".sol")
	endpoint := fmt.Sprintf("%s/record/%s/twitter", c.baseURL, url.PathEscape(name))
	return c.handle(ctx, endpoint)
}

// handle fetches one registry endpoint and normalizes the result.
// A missing registration is not an error: the proxy answers with a
// non-ok status, and some records are stored with a leading "@".
func (c *BonfidaClient) handle(ctx context.Context, endpoint string) (string, error) {
	var envelope bonfidaEnvelope[string]
	if err := getJSON(ctx, c.httpClient, endpoint, nil, &envelope); err != nil {
		return "", fmt.Errorf("bonfida handle: %w", err)
	}
	if !envelope.ok() {
		return "", nil
	}
	return strings.TrimPrefix(strings.TrimSpace(envelope.Result), "@"), nil
}

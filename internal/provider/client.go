package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// retryDelay is the pause before the single retry of a failed request.
// Provider hiccups are usually momentary; anything longer-lived should
// fall through to the pipeline's empty-default handling instead of
// stalling the scan.
const retryDelay = 500 * time.Millisecond

// maxResponseBody limits how much of a provider response is read.
// 10MB covers the largest asset pages while bounding memory use.
const maxResponseBody = 10 * 1024 * 1024

// getJSON performs a GET request and decodes the JSON response into out.
// Transient failures (network errors, 5xx, 429) are retried once.
func getJSON(ctx context.Context, client *http.Client, url string, header http.Header, out any) error {
	return doJSON(ctx, client, http.MethodGet, url, header, nil, out)
}

// postJSON performs a POST request with a JSON body and decodes the JSON
// response into out. Transient failures are retried once.
func postJSON(ctx context.Context, client *http.Client, url string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	header := http.Header{"Content-Type": []string{"application/json"}}
	return doJSON(ctx, client, http.MethodPost, url, header, payload, out)
}

// doJSON executes the request with a single retry on transient failure.
func doJSON(ctx context.Context, client *http.Client, method, url string, header http.Header, body []byte, out any) error {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryDelay):
			}
		}

		retryable, err := doOnce(ctx, client, method, url, header, body, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable {
			return err
		}
	}
	return lastErr
}

// doOnce executes one request attempt. The first return value reports
// whether the failure is worth retrying.
func doOnce(ctx context.Context, client *http.Client, method, url string, header http.Header, body []byte, out any) (bool, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return true, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBody))
		retryable := resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests
		return retryable, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return true, fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return false, nil
}

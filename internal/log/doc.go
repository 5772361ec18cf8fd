// Package log provides structured logging helpers built on log/slog.
//
// The SecureHandler wraps any slog.Handler and masks provider API keys and
// other credentials before records reach the underlying handler. Provider
// URLs are a particular hazard here: the transaction-history API carries
// the key as an api-key query parameter, so a naive request log would leak
// it on every fetch.
package log

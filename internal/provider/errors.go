package provider

import "errors"

// Provider errors.
var (
	// ErrUnexpectedStatus is returned when a provider responds with a
	// non-success HTTP status. Wrapped with the provider name and status
	// code at the call site.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrMalformedPayload is returned when a provider response cannot be
	// decoded into its typed record.
	ErrMalformedPayload = errors.New("malformed provider payload")

	// ErrRPCFailure is returned when a JSON-RPC call succeeds at the
	// transport level but carries an error object.
	ErrRPCFailure = errors.New("rpc error response")
)

// Package database provides the SQLite-backed response cache that sits
// in front of the analysis pipeline. It stores raw fetched provider
// bundles keyed by network and address, with TTL expiry and a capacity
// bound that evicts the oldest entries first.
//
// Only raw provider data is ever cached. Computed scores are
// request-scoped and never persisted.
package database

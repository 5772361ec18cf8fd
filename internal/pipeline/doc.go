// Package pipeline orchestrates a wallet scan: a fetch step that gathers
// provider data concurrently with per-provider fault tolerance, followed
// by an analyze step that runs the scoring pipeline.
//
// Each provider fetch is independently fault-tolerant and substitutes a
// documented empty default on failure. The one exception is the no-data
// condition: when transactions, assets, and balance are all empty at
// once, the scan fails with ErrNoData because a score computed from
// nothing is meaningless.
package pipeline

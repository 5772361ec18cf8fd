// Package provider implements clients for the third-party blockchain-data
// APIs that feed the analysis pipeline: Helius (transaction history,
// owned assets, native balance), Bonfida (name-service domains and linked
// social handles), and optionally Birdeye (portfolio PnL).
//
// Each provider is exposed through a one-method interface so the pipeline
// can be tested with fakes. Providers decode payloads into typed records
// at this boundary; analyzer code never sees raw JSON. Providers return
// errors on failure; substituting documented empty defaults is the
// pipeline's job, because only the pipeline knows that a single failed
// provider must not abort the whole analysis.
package provider

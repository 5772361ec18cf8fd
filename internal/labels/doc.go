// Package labels holds the static address-label registry used to classify
// counterparties. Labels are partitioned into two classes: exchanges
// (KYC-bearing custodial deposit addresses) and protocols (DEX, lending,
// staking, and marketplace programs). The registry is lookup-only and is
// never mutated at runtime; custom labels from the configuration file are
// merged into a fresh Registry at startup.
package labels

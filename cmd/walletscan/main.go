// Package main provides the entry point for the walletscan CLI.
//
// Walletscan analyzes the privacy exposure of Solana wallet addresses.
// It scores how linkable a wallet is to a real-world identity using
// public on-chain data.
//
// Usage:
//
//	walletscan scan <wallet-address>
//	walletscan serve
//
// See --help for all available options.
package main

// main is the entry point for walletscan.
func main() {
	Execute()
}

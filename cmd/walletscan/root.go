// Package main provides the entry point for the walletscan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for walletscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walletscan",
		Short: "Privacy exposure analyzer for Solana wallets",
		Long: `Walletscan analyzes how exposed a Solana wallet is to deanonymization.
It scores exchange linkage, behavioral fingerprints, counterparty clustering,
on-chain identity artifacts, and wealth visibility from public data only.

A Helius API key is required (flag, HELIUS_API_KEY, .env, or config file).`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

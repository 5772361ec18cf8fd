package model

import (
	"strings"
	"time"
)

// LamportsPerSOL is the number of lamports in one SOL.
const LamportsPerSOL = 1_000_000_000

// Transaction is an enriched transaction record as returned by the
// transaction history provider. It is immutable once fetched; the provider
// returns records in reverse-chronological order and the pipeline preserves
// that order so the first N records are the most recent.
//
// Design decision: Field names and JSON tags mirror the Helius enhanced
// transaction API. Decoding happens once at the provider boundary; analyzer
// code works with typed fields and never inspects raw JSON.
type Transaction struct {
	// Signature is the unique transaction identifier.
	Signature string `json:"signature"`

	// Type is a free-text category such as "SWAP" or "TRANSFER".
	Type string `json:"type"`

	// Source is the origin protocol label (e.g. "JUPITER").
	Source string `json:"source"`

	// Fee is the transaction fee in lamports.
	Fee int64 `json:"fee"`

	// FeePayer is the address that paid the transaction fee.
	FeePayer string `json:"feePayer"`

	// Timestamp is the block time in unix seconds. May be zero when the
	// provider could not resolve a block time; zero means "unknown".
	Timestamp int64 `json:"timestamp"`

	// Slot is the slot the transaction was processed in.
	Slot uint64 `json:"slot"`

	// NativeTransfers lists SOL movements within the transaction.
	NativeTransfers []NativeTransfer `json:"nativeTransfers,omitempty"`

	// TokenTransfers lists SPL token movements within the transaction.
	TokenTransfers []TokenTransfer `json:"tokenTransfers,omitempty"`

	// AccountData lists per-account balance deltas. Used as a fallback
	// counterparty signal when a transaction carries no transfer records.
	AccountData []AccountDelta `json:"accountData,omitempty"`

	// Description is an optional human-readable summary.
	Description string `json:"description,omitempty"`
}

// NativeTransfer is a SOL transfer between two accounts.
type NativeTransfer struct {
	// FromUserAccount is the sending wallet address.
	FromUserAccount string `json:"fromUserAccount"`

	// ToUserAccount is the receiving wallet address.
	ToUserAccount string `json:"toUserAccount"`

	// Amount is the transferred amount in lamports.
	Amount int64 `json:"amount"`
}

// TokenTransfer is an SPL token transfer between two accounts.
type TokenTransfer struct {
	// FromUserAccount is the sending wallet address.
	FromUserAccount string `json:"fromUserAccount"`

	// ToUserAccount is the receiving wallet address.
	ToUserAccount string `json:"toUserAccount"`

	// FromTokenAccount is the sending token account.
	FromTokenAccount string `json:"fromTokenAccount,omitempty"`

	// ToTokenAccount is the receiving token account.
	ToTokenAccount string `json:"toTokenAccount,omitempty"`

	// TokenAmount is the transferred amount in UI units.
	TokenAmount float64 `json:"tokenAmount"`

	// Mint is the token mint address.
	Mint string `json:"mint"`

	// TokenStandard distinguishes fungible tokens from NFT variants.
	TokenStandard string `json:"tokenStandard,omitempty"`
}

// AccountDelta is a per-account balance change within a transaction.
type AccountDelta struct {
	// Account is the affected account address.
	Account string `json:"account"`

	// NativeBalanceChange is the SOL delta in lamports (may be negative).
	NativeBalanceChange int64 `json:"nativeBalanceChange"`

	// TokenBalanceChanges lists SPL token deltas for this account.
	TokenBalanceChanges []TokenBalanceChange `json:"tokenBalanceChanges,omitempty"`
}

// TokenBalanceChange is an SPL token delta within an account.
type TokenBalanceChange struct {
	// Mint is the token mint address.
	Mint string `json:"mint"`

	// RawTokenAmount carries the raw amount and decimals.
	RawTokenAmount RawTokenAmount `json:"rawTokenAmount"`
}

// RawTokenAmount is a raw token quantity with its decimal scale.
// The amount is a string because raw token amounts can exceed int64.
type RawTokenAmount struct {
	// TokenAmount is the raw amount as a decimal string.
	TokenAmount string `json:"tokenAmount"`

	// Decimals is the token's decimal scale.
	Decimals int `json:"decimals"`
}

// HasTimestamp reports whether the transaction carries a usable block time.
func (t *Transaction) HasTimestamp() bool {
	return t.Timestamp > 0
}

// Time returns the block time as a time.Time in UTC.
// Returns the zero time when no timestamp is available.
func (t *Transaction) Time() time.Time {
	if !t.HasTimestamp() {
		return time.Time{}
	}
	return time.Unix(t.Timestamp, 0).UTC()
}

// IsTrade reports whether the transaction looks like a trade.
// SWAP and TOKEN_MINT types count, as does any type containing "TRADE".
func (t *Transaction) IsTrade() bool {
	switch t.Type {
	case "SWAP", "TOKEN_MINT":
		return true
	}
	return strings.Contains(t.Type, "TRADE")
}

package model

import (
	"errors"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// Address errors.
var (
	// ErrInvalidAddress is returned when the address is not a valid
	// base58-encoded Solana public key.
	ErrInvalidAddress = errors.New("invalid wallet address format")
	// ErrEmptyAddress is returned when the address is empty.
	ErrEmptyAddress = errors.New("wallet address cannot be empty")
)

const (
	// minAddressLength is the shortest plausible base58 public key.
	minAddressLength = 32
	// maxAddressLength is the longest plausible base58 public key.
	maxAddressLength = 44
)

// Address is an immutable value object representing a Solana wallet address.
// It validates the base58 format and the underlying public key bytes once,
// so downstream code never re-validates.
type Address struct {
	address string // Canonical base58 representation
}

// NewAddress creates a new Address from a string.
// It trims surrounding whitespace, checks the length bound (32-44
// characters), and decodes the base58 public key to confirm it represents
// a valid 32-byte key. Returns an error if the address is invalid.
func NewAddress(address string) (Address, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return Address{}, ErrEmptyAddress
	}
	if len(trimmed) < minAddressLength || len(trimmed) > maxAddressLength {
		return Address{}, ErrInvalidAddress
	}

	key, err := solana.PublicKeyFromBase58(trimmed)
	if err != nil {
		return Address{}, ErrInvalidAddress
	}

	return Address{address: key.String()}, nil
}

// MustNewAddress creates a new Address or panics if invalid.
// Use only for known-valid addresses in tests or initialization.
func MustNewAddress(address string) Address {
	a, err := NewAddress(address)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the canonical base58 address.
func (a Address) String() string {
	return a.address
}

// Short returns the truncated "first6...last4" display form used in
// counterparty lists. Addresses shorter than ten characters are returned
// unchanged.
func (a Address) Short() string {
	return ShortAddress(a.address)
}

// IsZero returns true if this is a zero value (empty) Address.
func (a Address) IsZero() bool {
	return a.address == ""
}

// Equals returns true if two Address values are equal.
func (a Address) Equals(other Address) bool {
	return a.address == other.address
}

// ShortAddress truncates a raw address string to "first6...last4" form.
// It accepts raw strings because counterparty addresses arrive unvalidated
// from provider payloads.
func ShortAddress(address string) string {
	if len(address) < 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}

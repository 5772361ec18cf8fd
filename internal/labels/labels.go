package labels

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/walletscan/internal/model"
)

// exchangeAddresses maps known custodial exchange deposit addresses to
// their exchange label. Multiple addresses may share one label; analyzers
// deduplicate by label, not by address.
//
// In production this would be a database of millions of tagged addresses.
// This is a representative set of well-known hot wallets.
var exchangeAddresses = map[string]string{
	// Binance
	"5tzFkiKscXHK5ZXCGbXZxdw7gTjjD1mBwuoFbhUvuAi9": "Binance",
	"9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM": "Binance",
	"AC5RDfQFmDS1deWZos921JfqscXdByf8BKHs5ACWjtW2": "Binance",

	// Coinbase
	"H8sMJSCQxfKiFTCfDR3DUMLPwcRbM61LGFJ8N4dK3WjS": "Coinbase",
	"GJRs4FwHtemZ5ZE9x3FNvJ8TMwitKTh21yxdRPqn7npE": "Coinbase",
	"2ojv9BAiHUrvsm9gxDe7fJSzbNZSJcxZvf8dqmWGHG8S": "Coinbase",

	// Kraken
	"CuieVDEDtLo7FypA9SbLM9saXFdb1dsshEkyErMqkRQq": "Kraken",
	"6WMq7XUK3gxFGGGPB6YPX7yfVnxLDvDJpLN9m4DLpajP": "Kraken",

	// OKX
	"5VCwKtCXgCJ6kit5FybXjvriW3xELsFDhYrPSqtJNmcD": "OKX",

	// FTX (historical, kept for exposure tracking)
	"FTTDpAQJXaJrCjMVLzeZVMkQiG7cMgSZAUzfTjxS2cZZ": "FTX",

	// Gate.io
	"4gT6pT9K8fPNP8KxAXrjVZJhPJYBp5YqZQqQ2qS8qTJd": "Gate.io",

	// Bybit
	"6FEVkH17P9y8Q9aCkDdPcMDjvj7SVxrTETaYEm8f51Jy": "Bybit",

	// KuCoin
	"BmFdpraQhkiDQE6SnfG5omcA1VwzqfXrwtNYBwWTymy6": "KuCoin",
}

// protocolAddresses maps known DEX, lending, staking, and marketplace
// program addresses to their protocol label.
var protocolAddresses = map[string]string{
	// Jupiter aggregator
	"JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4": "Jupiter",

	// Raydium
	"5Q544fKrFoe6tsEbD7S8EmxGTJYAKtTVhAW5Q5pge4j1": "Raydium",

	// Magic Eden
	"M2mx93ekt1fmXSVkTrUL9xVFHkmME8HTUi5Cyc5aF7K":  "Magic Eden",
	"MEisE1HzehtrDpAAT8PnLHjpSSkRYakotTuJRPjTpo8":  "Magic Eden",

	// Tensor
	"TSWAPaqyCSx2KABk68Shruf4rp7CxcNi8hAsbdwmHbN": "Tensor",

	// Marinade
	"MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD": "Marinade",

	// Jito
	"J1toso1uCk3RLmjorhTtrVwY9HJ7X8V9yYac6Y7kGCPn": "Jito",

	// Orca
	"whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc": "Orca",

	// Solend
	"So1endDq2YkqhipRh3WViPa8hdiSpxWy6z3Z6tMCpAo": "Solend",

	// Kamino
	"KLend2g3cP87fffoy8q1mQqGKjrxjC8boSyAYavgmjD": "Kamino",

	// Drift
	"dRiftyHA39MWEi3m9aunc5MzRF1JYuBsbn6VPcn33UH": "Drift",
}

// protocolPrefixes are vanity-address prefixes used by on-chain programs.
// Program deployers grind addresses that spell the protocol name, so a
// matching prefix is a reasonable naming-convention signal even when the
// exact address is not in the registry.
var protocolPrefixes = []string{
	"JUP", "So1end", "whirL", "TSWAP", "KLend", "dRift", "J1to", "MarBm",
}

// Registry is the lookup table for address classification.
// The zero value is unusable; construct with NewRegistry.
type Registry struct {
	exchanges map[string]string
	protocols map[string]string
}

// NewRegistry creates a Registry from the built-in label sets merged with
// the given custom labels. Custom entries win over built-in ones so
// operators can correct stale labels without a rebuild.
func NewRegistry(customExchanges, customProtocols map[string]string) *Registry {
	r := &Registry{
		exchanges: make(map[string]string, len(exchangeAddresses)+len(customExchanges)),
		protocols: make(map[string]string, len(protocolAddresses)+len(customProtocols)),
	}

	titler := cases.Title(language.English, cases.NoLower)
	for addr, label := range exchangeAddresses {
		r.exchanges[addr] = label
	}
	for addr, label := range customExchanges {
		r.exchanges[addr] = titler.String(label)
	}
	for addr, label := range protocolAddresses {
		r.protocols[addr] = label
	}
	for addr, label := range customProtocols {
		r.protocols[addr] = titler.String(label)
	}

	return r
}

// Exchange returns the exchange label for an address and whether it is a
// known custodial exchange address.
func (r *Registry) Exchange(address string) (string, bool) {
	label, ok := r.exchanges[address]
	return label, ok
}

// Protocol returns the protocol label for an address and whether it is a
// known protocol address.
func (r *Registry) Protocol(address string) (string, bool) {
	label, ok := r.protocols[address]
	return label, ok
}

// ExchangeCount returns the number of registered exchange addresses.
func (r *Registry) ExchangeCount() int {
	return len(r.exchanges)
}

// Classify determines the counterparty node type for an address.
// Exchange labels take precedence over protocol labels because KYC
// linkage is the stronger signal; unknown addresses are checked against
// protocol naming conventions before falling through to unknown.
func (r *Registry) Classify(address string) (nodeType, label string) {
	if l, ok := r.exchanges[address]; ok {
		return model.NodeTypeExchange, l
	}
	if l, ok := r.protocols[address]; ok {
		return model.NodeTypeProtocol, l
	}
	for _, prefix := range protocolPrefixes {
		if strings.HasPrefix(address, prefix) {
			return model.NodeTypeProtocol, ""
		}
	}
	return model.NodeTypeUnknown, ""
}

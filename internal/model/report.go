package model

import "time"

// Counterparty node classifications used in the clustering node list.
const (
	// NodeTypeExchange marks a counterparty found in the exchange label map.
	NodeTypeExchange = "exchange"
	// NodeTypeProtocol marks a counterparty found in the protocol label map
	// or matched by protocol naming conventions.
	NodeTypeProtocol = "protocol"
	// NodeTypeUnknown marks an unclassified counterparty.
	NodeTypeUnknown = "unknown"
)

// ExposureReport is the full result of a wallet exposure analysis.
// It is assembled once by the score aggregator and never mutated afterwards.
//
// Design decision: JSON tags use camelCase because the report is the
// payload of the public scan API; keeping the wire shape identical between
// CLI JSON output and the HTTP endpoint means one serialization to test.
type ExposureReport struct {
	// Address is the analyzed wallet address.
	Address string `json:"address"`

	// Network is the network the analysis ran against.
	Network string `json:"network"`

	// DateScanned is when the analysis was performed.
	DateScanned time.Time `json:"dateScanned"`

	// ExposureScore is the final weighted score, 0-100.
	ExposureScore int `json:"exposureScore"`

	// RiskLevel is the display bucket for ExposureScore.
	RiskLevel string `json:"riskLevel"`

	// ScoreBreakdown holds the five sub-scores.
	ScoreBreakdown ScoreBreakdown `json:"scoreBreakdown"`

	// NetWorthUSD is the estimated portfolio value in USD.
	NetWorthUSD float64 `json:"netWorthUsd"`

	// RealizedLossesUSD is the absolute realized loss in USD, zero when
	// no portfolio data was available.
	RealizedLossesUSD float64 `json:"realizedLossesUsd"`

	// TradeCount is the number of trade-like transactions.
	TradeCount int `json:"tradeCount"`

	// MemecoinTrades is a rough estimate of memecoin trades.
	// This is an illustrative heuristic, not a measured value.
	MemecoinTrades int `json:"memecoinTrades"`

	// Clustering summarizes counterparty relationships.
	Clustering ClusteringSummary `json:"clustering"`

	// Risks lists human-readable risk statements, most significant first.
	Risks []string `json:"risks"`

	// Links points at external explorers for the address.
	Links ExternalLinks `json:"links"`

	// RecentTxSummary summarizes the most recent transactions, newest
	// first, bounded at ten entries.
	RecentTxSummary []TransactionSummary `json:"recentTxSummary"`
}

// ScoreBreakdown holds the five named sub-scores, each clamped to 0-100.
type ScoreBreakdown struct {
	// Identity scores name-service, social-handle, and NFT metadata exposure.
	Identity int `json:"identity"`

	// KYCLinks scores direct custodial exchange linkage.
	KYCLinks int `json:"kycLinks"`

	// Financial scores wealth visibility.
	Financial int `json:"financial"`

	// Clustering scores counterparty relationship exposure.
	Clustering int `json:"clustering"`

	// Activity scores behavioral fingerprint exposure.
	Activity int `json:"activity"`
}

// ClusteringSummary describes the wallet's counterparty graph.
type ClusteringSummary struct {
	// InteractedCount is the number of distinct counterparties.
	InteractedCount int `json:"interactedCount"`

	// TopAddresses lists the ten most frequent counterparties in
	// truncated "first6...last4" form, descending by interaction count.
	TopAddresses []string `json:"topAddresses"`

	// Nodes lists the thirty most frequent counterparties with their
	// classification, descending by interaction count.
	Nodes []CounterpartyNode `json:"nodes,omitempty"`
}

// CounterpartyNode is a classified counterparty in the clustering node list.
type CounterpartyNode struct {
	// Address is the full counterparty address.
	Address string `json:"address"`

	// Label is the human label when the address is known, empty otherwise.
	Label string `json:"label,omitempty"`

	// Count is the number of observed interactions.
	Count int `json:"count"`

	// Type is the classification: exchange, protocol, or unknown.
	Type string `json:"type"`
}

// TransactionSummary is a bounded display summary of one transaction.
type TransactionSummary struct {
	// Date is the transaction date in YYYY-MM-DD form, or "Unknown".
	Date string `json:"date"`

	// Type is the transaction category.
	Type string `json:"type"`

	// AmountUSD is the approximate USD value of the native transfers,
	// rounded to cents.
	AmountUSD float64 `json:"amountUsd"`

	// Description is a human-readable summary.
	Description string `json:"description"`
}

// ExternalLinks points at public explorers for further investigation.
type ExternalLinks struct {
	// XSearch is a search URL for the address on X.
	XSearch string `json:"xSearch"`

	// Arkham is the Arkham Intelligence explorer URL.
	Arkham string `json:"arkham"`

	// Solscan is the Solscan account URL.
	Solscan string `json:"solscan"`
}

// NewExposureReport creates a report shell for the given address and
// network with the scan timestamp set. Analyzer results are filled in by
// the aggregator.
func NewExposureReport(address Address, network string) *ExposureReport {
	return &ExposureReport{
		Address:     address.String(),
		Network:     network,
		DateScanned: time.Now().UTC(),
		Links:       NewExternalLinks(address),
	}
}

// NewExternalLinks builds the explorer link set for an address.
func NewExternalLinks(address Address) ExternalLinks {
	addr := address.String()
	return ExternalLinks{
		XSearch: "https://x.com/search?q=" + addr + "&src=typed_query",
		Arkham:  "https://platform.arkhamintelligence.com/explorer/address/" + addr,
		Solscan: "https://solscan.io/account/" + addr,
	}
}

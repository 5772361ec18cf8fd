package model

// PortfolioPnL is aggregated profit-and-loss data from the optional
// portfolio provider. The provider may be entirely disabled, in which case
// the pipeline passes nil and the financial analyzer falls back to the
// naive asset-value sum.
type PortfolioPnL struct {
	// TotalRealizedPnL is the summed realized PnL across tokens, in USD.
	TotalRealizedPnL float64 `json:"totalRealizedPnl"`

	// TotalUnrealizedPnL is the summed unrealized PnL across tokens, in USD.
	TotalUnrealizedPnL float64 `json:"totalUnrealizedPnl"`

	// TotalPnL is realized plus unrealized PnL, in USD.
	TotalPnL float64 `json:"totalPnl"`

	// Tokens lists per-token PnL entries.
	Tokens []PortfolioToken `json:"tokens,omitempty"`
}

// PortfolioToken is a per-token PnL entry.
type PortfolioToken struct {
	// Address is the token mint address.
	Address string `json:"address"`

	// Symbol is the token symbol.
	Symbol string `json:"symbol,omitempty"`

	// RealizedPnL is the realized PnL for this token, in USD.
	RealizedPnL float64 `json:"realizedPnl"`

	// UnrealizedPnL is the unrealized PnL for this token, in USD.
	UnrealizedPnL float64 `json:"unrealizedPnl"`

	// HoldingValue is the current USD value of the holding.
	HoldingValue float64 `json:"holdingValue"`
}

// HoldingValueSum returns the summed current holding value across tokens.
func (p *PortfolioPnL) HoldingValueSum() float64 {
	var sum float64
	for _, t := range p.Tokens {
		sum += t.HoldingValue
	}
	return sum
}

package analyze

import (
	"github.com/shopspring/decimal"

	"github.com/nao1215/walletscan/internal/model"
)

// solPriceEstimateUSD is the fixed SOL price used for net-worth
// estimation. A live price feed is out of scope; the score ladder is
// coarse enough that an order-of-magnitude estimate suffices.
var solPriceEstimateUSD = decimal.NewFromInt(200)

// financialFloorScore is awarded for any positive net worth below the
// first ladder threshold.
const financialFloorScore = 10

// FinancialAnalyzer scores wealth visibility. A visibly valuable wallet
// is a more attractive target for targeted deanonymization.
type FinancialAnalyzer struct{}

// NewFinancialAnalyzer creates a FinancialAnalyzer.
func NewFinancialAnalyzer() *FinancialAnalyzer {
	return &FinancialAnalyzer{}
}

// FinancialResult holds the financial sub-score and its evidence.
type FinancialResult struct {
	// Score is the sub-score, 0-100.
	Score int

	// NetWorthUSD is the estimated portfolio value in USD.
	NetWorthUSD float64
}

// Analyze estimates net worth from the native balance and priced
// fungible holdings. When richer portfolio data reports a positive
// aggregate holding value, it supersedes the naive asset-value sum.
func (a *FinancialAnalyzer) Analyze(assets []model.Asset, solBalance float64, portfolio *model.PortfolioPnL) FinancialResult {
	native := decimal.NewFromFloat(solBalance).Mul(solPriceEstimateUSD)

	holdings := decimal.Zero
	for i := range assets {
		holdings = holdings.Add(assets[i].TotalUSD())
	}

	if portfolio != nil {
		if reported := decimal.NewFromFloat(portfolio.HoldingValueSum()); reported.IsPositive() {
			holdings = reported
		}
	}

	netWorth := native.Add(holdings)
	worth, _ := netWorth.Round(2).Float64()

	score := 0
	if netWorth.IsPositive() {
		score = financialFloorScore
		if ladder := netWorthLadder.Score(worth); ladder > score {
			score = ladder
		}
	}

	return FinancialResult{
		Score:       clampScore(score),
		NetWorthUSD: worth,
	}
}

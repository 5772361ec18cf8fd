package analyze

import (
	"math"

	"github.com/nao1215/walletscan/internal/labels"
	"github.com/nao1215/walletscan/internal/model"
)

// Aggregation weights. They sum to 1.0, which keeps the weighted score
// inside 0-100 as long as every sub-score is clamped.
//
// Design decision: exchange linkage carries the largest weight because a
// custodial exchange touch is the single strongest deanonymization
// signal; identity metadata carries the smallest because, despite the
// identity analyzer's own scoring being dominated by domain/handle
// linkage, it corroborates rather than establishes exposure.
const (
	weightKYCLinks   = 0.30
	weightClustering = 0.25
	weightActivity   = 0.20
	weightFinancial  = 0.15
	weightIdentity   = 0.10
)

// recentSummaryCount bounds the recent-transaction summary list.
const recentSummaryCount = 10

// Input carries the fetched provider data for one analysis run.
// Every field holds the fetched value or its documented fallback
// default; the analyzers never fetch anything themselves.
type Input struct {
	// Address is the wallet under analysis.
	Address model.Address

	// Network names the cluster the data was fetched from.
	Network string

	// Transactions is the transaction history, newest first.
	Transactions []model.Transaction

	// Assets is the owned-asset list.
	Assets []model.Asset

	// Balance is the native balance in SOL.
	Balance float64

	// Domains lists owned name-service domains, without suffix.
	Domains []string

	// Handles lists linked social handles.
	Handles []string

	// Portfolio is optional richer PnL data, nil when unavailable.
	Portfolio *model.PortfolioPnL
}

// Analyzer runs the five sub-analyzers, the narrator, and the score
// aggregator over one Input. It holds no per-request state and is safe
// for concurrent use.
type Analyzer struct {
	cex        *CEXAnalyzer
	activity   *ActivityAnalyzer
	clustering *ClusteringAnalyzer
	identity   *IdentityAnalyzer
	financial  *FinancialAnalyzer
}

// NewAnalyzer creates an Analyzer backed by the given label registry.
func NewAnalyzer(registry *labels.Registry) *Analyzer {
	return &Analyzer{
		cex:        NewCEXAnalyzer(registry),
		activity:   NewActivityAnalyzer(),
		clustering: NewClusteringAnalyzer(registry),
		identity:   NewIdentityAnalyzer(),
		financial:  NewFinancialAnalyzer(),
	}
}

// Analyze runs the full scoring pipeline and assembles the report.
func (a *Analyzer) Analyze(input *Input) *model.ExposureReport {
	cex := a.cex.Analyze(input.Transactions)
	activity := a.activity.Analyze(input.Transactions)
	clustering := a.clustering.Analyze(input.Transactions, input.Address)
	identity := a.identity.Analyze(input.Assets, input.Domains, input.Handles)
	financial := a.financial.Analyze(input.Assets, input.Balance, input.Portfolio)

	breakdown := model.ScoreBreakdown{
		Identity:   identity.Score,
		KYCLinks:   cex.Score,
		Financial:  financial.Score,
		Clustering: clustering.Score,
		Activity:   activity.Score,
	}
	score := WeightedScore(breakdown)

	tradeCount := 0
	for i := range input.Transactions {
		if input.Transactions[i].IsTrade() {
			tradeCount++
		}
	}

	report := model.NewExposureReport(input.Address, input.Network)
	report.ExposureScore = score
	report.RiskLevel = model.RiskLevelForScore(score).String()
	report.ScoreBreakdown = breakdown
	report.NetWorthUSD = financial.NetWorthUSD
	report.RealizedLossesUSD = realizedLosses(input.Portfolio)
	report.TradeCount = tradeCount
	// Rough fixed-ratio estimate; memecoin trades are not individually
	// detected from mint metadata.
	report.MemecoinTrades = tradeCount * 2 / 5
	report.Clustering = model.ClusteringSummary{
		InteractedCount: clustering.InteractedCount,
		TopAddresses:    clustering.TopAddresses,
		Nodes:           clustering.Nodes,
	}
	report.Risks = Narrate(cex, activity, clustering, identity)
	report.RecentTxSummary = Summaries(input.Transactions)
	return report
}

// WeightedScore computes the aggregate exposure score from a breakdown.
// It is a pure function so the aggregate is verifiable from the
// breakdown alone.
func WeightedScore(b model.ScoreBreakdown) int {
	weighted := float64(b.KYCLinks)*weightKYCLinks +
		float64(b.Clustering)*weightClustering +
		float64(b.Activity)*weightActivity +
		float64(b.Financial)*weightFinancial +
		float64(b.Identity)*weightIdentity
	return clampScore(int(math.Round(weighted)))
}

// realizedLosses extracts the absolute realized loss from portfolio
// data, zero when no data is available or the wallet is in profit.
func realizedLosses(portfolio *model.PortfolioPnL) float64 {
	if portfolio == nil || portfolio.TotalRealizedPnL >= 0 {
		return 0
	}
	return math.Abs(portfolio.TotalRealizedPnL)
}

// Summaries builds display summaries for the most recent transactions.
// The provider returns history newest first, so the first entries are
// the most recent.
func Summaries(transactions []model.Transaction) []model.TransactionSummary {
	bound := len(transactions)
	if bound > recentSummaryCount {
		bound = recentSummaryCount
	}

	summaries := make([]model.TransactionSummary, 0, bound)
	for i := 0; i < bound; i++ {
		tx := &transactions[i]

		date := "Unknown"
		if tx.HasTimestamp() {
			date = tx.Time().Format("2006-01-02")
		}

		var lamports int64
		for _, transfer := range tx.NativeTransfers {
			lamports += transfer.Amount
		}
		price, _ := solPriceEstimateUSD.Float64()
		amountUSD := math.Round(float64(lamports)/model.LamportsPerSOL*price*100) / 100

		txType := tx.Type
		if txType == "" {
			txType = "UNKNOWN"
		}
		description := tx.Description
		if description == "" {
			description = txType + " transaction"
		}

		summaries = append(summaries, model.TransactionSummary{
			Date:        date,
			Type:        txType,
			AmountUSD:   amountUSD,
			Description: description,
		})
	}
	return summaries
}

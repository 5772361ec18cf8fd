package analyze

import (
	"sort"

	"github.com/nao1215/walletscan/internal/labels"
	"github.com/nao1215/walletscan/internal/model"
)

// cexTransferBoostThreshold is the touching-transfer count above which
// the exchange score receives a volume boost.
const cexTransferBoostThreshold = 10

// cexTransferBoost is the score added when the volume threshold is
// exceeded.
const cexTransferBoost = 15

// CEXAnalyzer detects direct transfers to and from custodial exchange
// deposit addresses. Exchange linkage is the strongest deanonymization
// signal in the aggregate: a custodial exchange holds verified identity
// records for its deposit addresses.
type CEXAnalyzer struct {
	registry *labels.Registry
}

// NewCEXAnalyzer creates a CEXAnalyzer backed by the given label registry.
func NewCEXAnalyzer(registry *labels.Registry) *CEXAnalyzer {
	return &CEXAnalyzer{registry: registry}
}

// CEXResult holds the exchange-linkage sub-score and its evidence.
type CEXResult struct {
	// Score is the sub-score, 0-100.
	Score int

	// Exchanges lists the distinct exchange labels touched, sorted
	// alphabetically. Deduplication is by label: two deposit addresses
	// of the same exchange count once.
	Exchanges []string

	// TransferCount is the number of transfers touching any exchange
	// address. Unlike Exchanges it counts every occurrence.
	TransferCount int
}

// Analyze scans every native and token transfer for exchange endpoints.
func (a *CEXAnalyzer) Analyze(transactions []model.Transaction) CEXResult {
	seen := make(map[string]struct{})
	transferCount := 0

	record := func(address string) {
		if label, ok := a.registry.Exchange(address); ok {
			seen[label] = struct{}{}
			transferCount++
		}
	}

	for _, tx := range transactions {
		for _, transfer := range tx.NativeTransfers {
			record(transfer.FromUserAccount)
			record(transfer.ToUserAccount)
		}
		for _, transfer := range tx.TokenTransfers {
			record(transfer.FromUserAccount)
			record(transfer.ToUserAccount)
		}
	}

	exchanges := make([]string, 0, len(seen))
	for label := range seen {
		exchanges = append(exchanges, label)
	}
	sort.Strings(exchanges)

	score := exchangeLadder.Score(float64(len(exchanges)))
	if transferCount > cexTransferBoostThreshold {
		score = boost(score, cexTransferBoost)
	}

	return CEXResult{
		Score:         clampScore(score),
		Exchanges:     exchanges,
		TransferCount: transferCount,
	}
}

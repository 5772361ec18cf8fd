package analyze

import (
	"sort"

	"github.com/nao1215/walletscan/internal/labels"
	"github.com/nao1215/walletscan/internal/model"
)

const (
	// topAddressDisplayCount bounds the truncated display list.
	topAddressDisplayCount = 10

	// topNodeCount bounds the classified node list.
	topNodeCount = 30
)

// ClusteringAnalyzer maps the wallet's counterparty graph. Frequent
// counterparties allow an observer to cluster addresses as probably
// controlled by, or close to, the same entity.
//
// Counterparty extraction uses a three-tier fallback chain for sparse
// data: per-transfer counterparties first, per-account balance deltas
// for transactions without transfer records, and fee payers as a weak
// signal only when the whole transaction set produced nothing else.
type ClusteringAnalyzer struct {
	registry *labels.Registry
}

// NewClusteringAnalyzer creates a ClusteringAnalyzer backed by the given
// label registry.
func NewClusteringAnalyzer(registry *labels.Registry) *ClusteringAnalyzer {
	return &ClusteringAnalyzer{registry: registry}
}

// ClusteringResult holds the clustering sub-score and its evidence.
type ClusteringResult struct {
	// Score is the sub-score, 0-100.
	Score int

	// InteractedCount is the number of distinct counterparties.
	InteractedCount int

	// TopAddresses lists the most frequent counterparties in truncated
	// "first6...last4" form, descending by interaction count.
	TopAddresses []string

	// Nodes lists the most frequent counterparties with full address,
	// classification, and interaction count.
	Nodes []model.CounterpartyNode
}

// Analyze builds the counterparty frequency map and ranks it.
func (a *ClusteringAnalyzer) Analyze(transactions []model.Transaction, self model.Address) ClusteringResult {
	selfAddr := self.String()
	counts := make(map[string]int)

	for i := range transactions {
		tx := &transactions[i]

		if len(tx.NativeTransfers) == 0 && len(tx.TokenTransfers) == 0 {
			countBalanceDeltas(counts, tx, selfAddr)
			continue
		}

		for _, transfer := range tx.NativeTransfers {
			countCounterparty(counts, transfer.FromUserAccount, transfer.ToUserAccount, selfAddr)
		}
		for _, transfer := range tx.TokenTransfers {
			countCounterparty(counts, transfer.FromUserAccount, transfer.ToUserAccount, selfAddr)
		}
	}

	// Last resort: a wallet whose history carries no transfer or delta
	// records at all still reveals who paid its fees.
	if len(counts) == 0 {
		for i := range transactions {
			if payer := transactions[i].FeePayer; payer != "" && payer != selfAddr {
				counts[payer]++
			}
		}
	}

	ranked := rankCounterparties(counts)

	top := make([]string, 0, topAddressDisplayCount)
	for _, entry := range ranked {
		if len(top) == topAddressDisplayCount {
			break
		}
		top = append(top, model.ShortAddress(entry.address))
	}

	nodes := make([]model.CounterpartyNode, 0, topNodeCount)
	for _, entry := range ranked {
		if len(nodes) == topNodeCount {
			break
		}
		nodeType, label := a.registry.Classify(entry.address)
		nodes = append(nodes, model.CounterpartyNode{
			Address: entry.address,
			Label:   label,
			Count:   entry.count,
			Type:    nodeType,
		})
	}

	return ClusteringResult{
		Score:           clampScore(clusteringLadder.Score(float64(len(counts)))),
		InteractedCount: len(counts),
		TopAddresses:    top,
		Nodes:           nodes,
	}
}

// countCounterparty increments the count for whichever side of a transfer
// is not the wallet under analysis. Transfers where the counterparty is
// absent or is the wallet itself carry no clustering signal.
func countCounterparty(counts map[string]int, from, to, self string) {
	counterparty := to
	if to == self {
		counterparty = from
	}
	if counterparty == "" || counterparty == self {
		return
	}
	counts[counterparty]++
}

// countBalanceDeltas counts accounts with a non-zero balance change as
// counterparties of a transaction that carries no transfer records.
func countBalanceDeltas(counts map[string]int, tx *model.Transaction, self string) {
	for _, delta := range tx.AccountData {
		if delta.Account == "" || delta.Account == self {
			continue
		}
		if delta.NativeBalanceChange != 0 || hasTokenChange(delta.TokenBalanceChanges) {
			counts[delta.Account]++
		}
	}
}

// hasTokenChange reports whether any token delta is non-zero.
func hasTokenChange(changes []model.TokenBalanceChange) bool {
	for _, change := range changes {
		amount := change.RawTokenAmount.TokenAmount
		if amount != "" && amount != "0" {
			return true
		}
	}
	return false
}

// rankedCounterparty pairs an address with its interaction count.
type rankedCounterparty struct {
	address string
	count   int
}

// rankCounterparties sorts counterparties descending by count.
// Ties break by address so identical inputs always rank identically.
func rankCounterparties(counts map[string]int) []rankedCounterparty {
	ranked := make([]rankedCounterparty, 0, len(counts))
	for address, count := range counts {
		ranked = append(ranked, rankedCounterparty{address: address, count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].address < ranked[j].address
	})
	return ranked
}

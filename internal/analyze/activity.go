package analyze

import (
	"github.com/nao1215/walletscan/internal/model"
)

const (
	// secondsPerDay converts a timestamp span to whole days.
	secondsPerDay = 24 * 60 * 60

	// activityRateBoostThreshold is the transactions-per-day rate above
	// which the activity score receives a frequency boost.
	activityRateBoostThreshold = 3.0

	// activityRateBoost is the score added for high-frequency activity.
	activityRateBoost = 5
)

// ActivityAnalyzer scores behavioral fingerprint exposure from raw
// transaction volume and frequency. A busy wallet leaves a detailed,
// linkable activity pattern even without any labeled counterparty.
type ActivityAnalyzer struct{}

// NewActivityAnalyzer creates an ActivityAnalyzer.
func NewActivityAnalyzer() *ActivityAnalyzer {
	return &ActivityAnalyzer{}
}

// ActivityResult holds the activity sub-score and its evidence.
type ActivityResult struct {
	// Score is the sub-score, 0-100.
	Score int

	// TransactionCount is the total transaction count.
	TransactionCount int

	// DaysActive is the whole-day span between the oldest and newest
	// timestamped transactions, at least 1.
	DaysActive int

	// TransactionsPerDay is the average daily transaction rate.
	TransactionsPerDay float64
}

// Analyze computes the activity profile of the transaction set.
// Fewer than two usable timestamps means no rate can be computed; the
// day span then defaults to 1 and the rate to the raw count.
func (a *ActivityAnalyzer) Analyze(transactions []model.Transaction) ActivityResult {
	count := len(transactions)

	var oldest, newest int64
	timestamped := 0
	for i := range transactions {
		tx := &transactions[i]
		if !tx.HasTimestamp() {
			continue
		}
		if timestamped == 0 || tx.Timestamp < oldest {
			oldest = tx.Timestamp
		}
		if tx.Timestamp > newest {
			newest = tx.Timestamp
		}
		timestamped++
	}

	daysActive := 1
	if timestamped >= 2 {
		if span := int((newest - oldest) / secondsPerDay); span > 1 {
			daysActive = span
		}
	}
	perDay := float64(count) / float64(daysActive)

	score := activityLadder.Score(float64(count))
	if perDay > activityRateBoostThreshold {
		score = boost(score, activityRateBoost)
	}

	return ActivityResult{
		Score:              clampScore(score),
		TransactionCount:   count,
		DaysActive:         daysActive,
		TransactionsPerDay: perDay,
	}
}

package analyze

// LadderStep is one rung of a scoring ladder.
type LadderStep struct {
	// Threshold is the minimum value at which this step applies.
	Threshold float64

	// Score is the score awarded when the threshold is met.
	Score int
}

// Ladder is an ordered table of scoring steps, ascending by threshold.
// Scoring takes the highest matched step, so a ladder is a monotonic
// step function: a larger input never yields a smaller score.
type Ladder []LadderStep

// Score returns the score of the highest step whose threshold the value
// meets, or zero when the value is below every threshold.
func (l Ladder) Score(value float64) int {
	score := 0
	for _, step := range l {
		if value >= step.Threshold {
			score = step.Score
		}
	}
	return score
}

// Scoring ladders. Each is ascending by threshold; Ladder.Score relies
// on that ordering.
var (
	// exchangeLadder scores the count of distinct exchanges touched.
	// A single custodial touch jumps straight to 40 because it introduces
	// the possibility of real-identity linkage regardless of volume.
	exchangeLadder = Ladder{
		{Threshold: 1, Score: 40},
		{Threshold: 2, Score: 60},
		{Threshold: 3, Score: 75},
	}

	// activityLadder scores the total transaction count.
	activityLadder = Ladder{
		{Threshold: 1, Score: 10},
		{Threshold: 5, Score: 20},
		{Threshold: 20, Score: 35},
		{Threshold: 50, Score: 50},
		{Threshold: 100, Score: 65},
		{Threshold: 250, Score: 80},
		{Threshold: 500, Score: 90},
	}

	// clusteringLadder scores the count of distinct counterparties.
	clusteringLadder = Ladder{
		{Threshold: 1, Score: 10},
		{Threshold: 3, Score: 20},
		{Threshold: 10, Score: 35},
		{Threshold: 25, Score: 50},
		{Threshold: 50, Score: 65},
		{Threshold: 100, Score: 80},
		{Threshold: 200, Score: 90},
	}

	// netWorthLadder scores the estimated USD net worth above the
	// any-value floor of 10 applied by the financial analyzer.
	netWorthLadder = Ladder{
		{Threshold: 10, Score: 20},
		{Threshold: 100, Score: 35},
		{Threshold: 1_000, Score: 50},
		{Threshold: 10_000, Score: 65},
		{Threshold: 50_000, Score: 80},
		{Threshold: 100_000, Score: 90},
	}
)

// boostCap is the ceiling applied when a boost is added on top of a
// ladder score, leaving headroom below 100.
const boostCap = 95

// boost adds delta to score, capped at boostCap.
func boost(score, delta int) int {
	if boosted := score + delta; boosted < boostCap {
		return boosted
	}
	return boostCap
}

// clampScore bounds a score to the 0-100 sub-score range.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

package model

// RiskLevel buckets an exposure score for display.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed.
type RiskLevel int

const (
	// RiskLow indicates limited public exposure (score below 25).
	RiskLow RiskLevel = iota

	// RiskMedium indicates a recognizable on-chain footprint (score 25-49).
	RiskMedium

	// RiskHigh indicates the wallet is readily trackable (score 50-74).
	RiskHigh

	// RiskCritical indicates likely deanonymization (score 75 and above).
	RiskCritical
)

// String returns a human-readable representation of the risk level.
func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "Low"
	case RiskMedium:
		return "Medium"
	case RiskHigh:
		return "High"
	case RiskCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// RiskLevelForScore maps a 0-100 exposure score to its display bucket.
func RiskLevelForScore(score int) RiskLevel {
	switch {
	case score >= 75:
		return RiskCritical
	case score >= 50:
		return RiskHigh
	case score >= 25:
		return RiskMedium
	default:
		return RiskLow
	}
}

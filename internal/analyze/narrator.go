package analyze

import (
	"fmt"
	"strings"
)

// Narration trigger thresholds.
const (
	// narratorVolumeThreshold is the transaction count above which volume
	// itself becomes a fingerprinting risk.
	narratorVolumeThreshold = 100

	// narratorClusterThreshold is the counterparty count above which
	// clustering analysis becomes practical.
	narratorClusterThreshold = 50

	// narratorHistoryThresholdDays is the wallet age above which the
	// behavioral history itself is called out.
	narratorHistoryThresholdDays = 365

	// daysPerMonth converts a day span to months for display.
	daysPerMonth = 30
)

// Narrate turns analyzer evidence into an ordered list of human-readable
// risk statements. The order is fixed, strongest signal class first, so
// identical inputs always narrate identically. When nothing triggers, a
// single low-exposure statement is emitted.
func Narrate(cex CEXResult, activity ActivityResult, clustering ClusteringResult, identity IdentityResult) []string {
	risks := make([]string, 0, 8)

	if len(cex.Exchanges) > 0 {
		risks = append(risks, fmt.Sprintf(
			"Direct transfers to/from %s detected - potential KYC linkage",
			strings.Join(cex.Exchanges, ", ")))
	}

	if activity.TransactionCount > narratorVolumeThreshold {
		risks = append(risks, fmt.Sprintf(
			"High transaction volume (%d txs) creates detailed activity fingerprint",
			activity.TransactionCount))
	}

	if clustering.InteractedCount > narratorClusterThreshold {
		risks = append(risks, fmt.Sprintf(
			"Interacted with %d unique addresses - clustering analysis possible",
			clustering.InteractedCount))
	}

	if len(identity.Domains) > 0 {
		names := make([]string, 0, len(identity.Domains))
		for _, domain := range identity.Domains {
			names = append(names, domain+".sol")
		}
		risks = append(risks, fmt.Sprintf(
			"Name-service domain ownership (%s) - direct identity linkage",
			strings.Join(names, ", ")))
	}

	if len(identity.Handles) > 0 {
		risks = append(risks, fmt.Sprintf(
			"Social handle @%s linked on-chain - critical identity exposure",
			identity.Handles[0]))
	}

	if identity.HasNFTs() {
		risks = append(risks, "NFT holdings may contain identifying metadata")
	}

	if activity.DaysActive > narratorHistoryThresholdDays {
		risks = append(risks, fmt.Sprintf(
			"Long wallet history (%d months) - extensive behavioral pattern available",
			activity.DaysActive/daysPerMonth))
	}

	if len(risks) == 0 {
		risks = append(risks, "Limited on-chain activity - low exposure profile")
	}
	return risks
}

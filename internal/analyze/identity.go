package analyze

import (
	"strings"

	"github.com/nao1215/walletscan/internal/model"
)

// Identity score increments. Domain and handle linkage dominate because
// a resolved name-service or social-handle registration is a direct,
// searchable identity bridge; NFT metadata is circumstantial evidence.
const (
	identityNFTPresence      = 10
	identityManyNFTs         = 10
	identityRevealingNFT     = 15
	identityProfilePicture   = 10
	identityCommunityToken   = 5
	identityDomainOwnership  = 30
	identityManyDomains      = 10
	identitySocialHandle     = 25
	identityManyNFTThreshold = 10
	identityManyDomainLimit  = 2
)

// IdentityAnalyzer scores direct identity-linkage exposure: name-service
// domains, linked social handles, and identifying NFT metadata.
type IdentityAnalyzer struct{}

// NewIdentityAnalyzer creates an IdentityAnalyzer.
func NewIdentityAnalyzer() *IdentityAnalyzer {
	return &IdentityAnalyzer{}
}

// IdentityResult holds the identity sub-score and its evidence.
type IdentityResult struct {
	// Score is the sub-score, 0-100.
	Score int

	// NFTCount is the number of non-fungible assets held.
	NFTCount int

	// RevealingNFTs lists names of NFTs whose metadata suggests a
	// doxxing risk (domain-name NFTs, social-handle attributes).
	RevealingNFTs []string

	// Domains lists owned name-service domains, without suffix.
	Domains []string

	// Handles lists linked social handles.
	Handles []string
}

// HasNFTs reports whether the wallet holds any non-fungible asset.
func (r IdentityResult) HasNFTs() bool {
	return r.NFTCount > 0
}

// Analyze scans assets and external registry lookups for identity vectors.
func (a *IdentityAnalyzer) Analyze(assets []model.Asset, domains, handles []string) IdentityResult {
	result := IdentityResult{
		Domains: domains,
		Handles: handles,
	}

	hasProfilePicture := false
	hasCommunityToken := false
	for i := range assets {
		asset := &assets[i]
		if asset.IsNFT() {
			result.NFTCount++
			if isRevealingNFT(asset) {
				result.RevealingNFTs = append(result.RevealingNFTs, asset.Name())
			}
			if isProfilePictureNFT(asset) {
				hasProfilePicture = true
			}
			continue
		}
		if isCommunityToken(asset) {
			hasCommunityToken = true
		}
	}

	score := 0
	if result.NFTCount > 0 {
		score += identityNFTPresence
	}
	if result.NFTCount > identityManyNFTThreshold {
		score += identityManyNFTs
	}
	if len(result.RevealingNFTs) > 0 {
		score += identityRevealingNFT
	}
	if hasProfilePicture {
		score += identityProfilePicture
	}
	if hasCommunityToken {
		score += identityCommunityToken
	}
	if len(domains) > 0 {
		score += identityDomainOwnership
	}
	if len(domains) > identityManyDomainLimit {
		score += identityManyDomains
	}
	if len(handles) > 0 {
		score += identitySocialHandle
	}

	if score > boostCap {
		score = boostCap
	}
	result.Score = clampScore(score)
	return result
}

// isRevealingNFT reports whether an NFT's metadata suggests a doxxing
// risk: domain-name NFTs, name-bearing collections, identity references
// in the description text, or embedded social-handle attributes.
func isRevealingNFT(asset *model.Asset) bool {
	name := strings.ToLower(asset.Name())
	if strings.Contains(name, ".sol") || strings.Contains(name, "name") {
		return true
	}

	if hasIdentityText(strings.ToLower(asset.Description())) {
		return true
	}

	if asset.Content == nil || asset.Content.Metadata == nil {
		return false
	}
	for _, attr := range asset.Content.Metadata.Attributes {
		switch strings.ToLower(attr.TraitType) {
		case "twitter", "x", "discord", "telegram", "website", "email":
			if attr.Value != "" {
				return true
			}
		}
	}
	return false
}

// hasIdentityText reports whether lowercased free-form text embeds a
// name-service domain, a social-platform reference, or an @-handle.
func hasIdentityText(text string) bool {
	if text == "" {
		return false
	}
	for _, marker := range []string{".sol", "twitter", "discord", "telegram", "@"} {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// isProfilePictureNFT reports whether an NFT looks like a profile
// picture or avatar, which owners tend to reuse across platforms.
func isProfilePictureNFT(asset *model.Asset) bool {
	text := strings.ToLower(asset.Name() + " " + asset.Symbol())
	return strings.Contains(text, "pfp") ||
		strings.Contains(text, "profile") ||
		strings.Contains(text, "avatar")
}

// isCommunityToken reports whether a fungible token's naming suggests
// community, DAO, or fan membership, which narrows the owner's social
// circle.
func isCommunityToken(asset *model.Asset) bool {
	symbol := strings.ToUpper(asset.Symbol())
	if strings.Contains(symbol, "DAO") {
		return true
	}
	name := strings.ToLower(asset.Name())
	return strings.Contains(name, "community") || strings.Contains(name, "member")
}

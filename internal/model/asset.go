package model

import "github.com/shopspring/decimal"

// Asset interface tags used by the asset provider to distinguish NFT
// variants from fungible tokens.
const (
	// InterfaceV1NFT marks a standard Metaplex NFT.
	InterfaceV1NFT = "V1_NFT"
	// InterfaceProgrammableNFT marks a programmable NFT.
	InterfaceProgrammableNFT = "ProgrammableNFT"
	// InterfaceFungibleToken marks a fungible SPL token.
	InterfaceFungibleToken = "FungibleToken"
)

// Asset is an owned-asset record as returned by the asset provider.
// Display metadata and token information are optional; analyzers must
// treat missing sub-structs as "no information", never as an error.
type Asset struct {
	// ID is the asset identifier (mint address).
	ID string `json:"id"`

	// Interface tags the asset variant (NFT, programmable NFT, fungible).
	Interface string `json:"interface,omitempty"`

	// Content holds optional display metadata.
	Content *AssetContent `json:"content,omitempty"`

	// TokenInfo holds optional fungible-token information.
	TokenInfo *TokenInfo `json:"token_info,omitempty"`
}

// AssetContent is the display metadata block of an asset.
type AssetContent struct {
	// JSONURI points at the off-chain metadata document.
	JSONURI string `json:"json_uri,omitempty"`

	// Metadata holds the on-chain name, symbol, and attributes.
	Metadata *AssetMetadata `json:"metadata,omitempty"`
}

// AssetMetadata is the name/symbol/attribute block of an asset.
type AssetMetadata struct {
	// Name is the display name.
	Name string `json:"name,omitempty"`

	// Symbol is the token symbol.
	Symbol string `json:"symbol,omitempty"`

	// Description is the free-text description.
	Description string `json:"description,omitempty"`

	// Attributes lists trait key/value pairs.
	Attributes []AssetAttribute `json:"attributes,omitempty"`
}

// AssetAttribute is a single trait on an asset.
type AssetAttribute struct {
	// TraitType is the attribute key (e.g. "twitter").
	TraitType string `json:"trait_type"`

	// Value is the attribute value.
	Value string `json:"value"`
}

// TokenInfo is the fungible-token information block of an asset.
type TokenInfo struct {
	// Balance is the raw token balance.
	Balance float64 `json:"balance"`

	// Decimals is the token's decimal scale.
	Decimals int `json:"decimals"`

	// PriceInfo holds optional pricing data.
	PriceInfo *PriceInfo `json:"price_info,omitempty"`
}

// PriceInfo is the pricing block of a fungible token.
type PriceInfo struct {
	// PricePerToken is the USD price per UI unit.
	PricePerToken float64 `json:"price_per_token"`

	// TotalPrice is the total USD value of the holding.
	TotalPrice float64 `json:"total_price"`
}

// IsNFT reports whether the asset is a non-fungible variant.
func (a *Asset) IsNFT() bool {
	return a.Interface == InterfaceV1NFT || a.Interface == InterfaceProgrammableNFT
}

// Name returns the asset display name, or empty when no metadata exists.
func (a *Asset) Name() string {
	if a.Content == nil || a.Content.Metadata == nil {
		return ""
	}
	return a.Content.Metadata.Name
}

// Symbol returns the asset symbol, or empty when no metadata exists.
func (a *Asset) Symbol() string {
	if a.Content == nil || a.Content.Metadata == nil {
		return ""
	}
	return a.Content.Metadata.Symbol
}

// Description returns the free-text description, or empty when no
// metadata exists.
func (a *Asset) Description() string {
	if a.Content == nil || a.Content.Metadata == nil {
		return ""
	}
	return a.Content.Metadata.Description
}

// TotalUSD returns the reported total USD value of a fungible holding.
// Returns zero when no pricing information is available.
func (a *Asset) TotalUSD() decimal.Decimal {
	if a.TokenInfo == nil || a.TokenInfo.PriceInfo == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(a.TokenInfo.PriceInfo.TotalPrice)
}

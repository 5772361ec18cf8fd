package analyze

import (
	"reflect"
	"strings"
	"testing"

	"github.com/nao1215/walletscan/internal/labels"
	"github.com/nao1215/walletscan/internal/model"
)

// Known-label fixture addresses.
const (
	selfAddr     = "11111111111111111111111111111111"
	binanceAddr  = "5tzFkiKscXHK5ZXCGbXZxdw7gTjjD1mBwuoFbhUvuAi9"
	binanceAddr2 = "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"
	coinbaseAddr = "H8sMJSCQxfKiFTCfDR3DUMLPwcRbM61LGFJ8N4dK3WjS"
	krakenAddr   = "CuieVDEDtLo7FypA9SbLM9saXFdb1dsshEkyErMqkRQq"
	jupiterAddr  = "JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4"
	randomAddr   = "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"
)

func testRegistry() *labels.Registry {
	return labels.NewRegistry(nil, nil)
}

func nativeTransferTx(from, to string) model.Transaction {
	return model.Transaction{
		Type: "TRANSFER",
		NativeTransfers: []model.NativeTransfer{
			{FromUserAccount: from, ToUserAccount: to, Amount: model.LamportsPerSOL},
		},
	}
}

// TestCEXAnalyzer tests exchange-linkage detection and scoring.
func TestCEXAnalyzer(t *testing.T) {
	t.Parallel()

	analyzer := NewCEXAnalyzer(testRegistry())

	t.Run("no exchange touch scores zero", func(t *testing.T) {
		t.Parallel()

		result := analyzer.Analyze([]model.Transaction{nativeTransferTx(selfAddr, randomAddr)})
		if result.Score != 0 {
			t.Errorf("score = %d, want 0", result.Score)
		}
		if len(result.Exchanges) != 0 {
			t.Errorf("exchanges = %v, want none", result.Exchanges)
		}
	})

	t.Run("single exchange transfer scores 40", func(t *testing.T) {
		t.Parallel()

		result := analyzer.Analyze([]model.Transaction{nativeTransferTx(selfAddr, binanceAddr)})
		if result.Score != 40 {
			t.Errorf("score = %d, want 40", result.Score)
		}
		if !reflect.DeepEqual(result.Exchanges, []string{"Binance"}) {
			t.Errorf("exchanges = %v, want [Binance]", result.Exchanges)
		}
		if result.TransferCount != 1 {
			t.Errorf("transfer count = %d, want 1", result.TransferCount)
		}
	})

	t.Run("deduplicates by label not address", func(t *testing.T) {
		t.Parallel()

		result := analyzer.Analyze([]model.Transaction{
			nativeTransferTx(selfAddr, binanceAddr),
			nativeTransferTx(binanceAddr2, selfAddr),
		})
		if len(result.Exchanges) != 1 {
			t.Errorf("exchanges = %v, want one distinct label", result.Exchanges)
		}
		if result.Score != 40 {
			t.Errorf("score = %d, want 40", result.Score)
		}
		if result.TransferCount != 2 {
			t.Errorf("transfer count = %d, want 2", result.TransferCount)
		}
	})

	t.Run("more distinct exchanges never score less", func(t *testing.T) {
		t.Parallel()

		two := analyzer.Analyze([]model.Transaction{
			nativeTransferTx(selfAddr, binanceAddr),
			nativeTransferTx(selfAddr, coinbaseAddr),
		})
		three := analyzer.Analyze([]model.Transaction{
			nativeTransferTx(selfAddr, binanceAddr),
			nativeTransferTx(selfAddr, coinbaseAddr),
			nativeTransferTx(selfAddr, krakenAddr),
		})
		if two.Score != 60 {
			t.Errorf("two exchanges score = %d, want 60", two.Score)
		}
		if three.Score < two.Score {
			t.Errorf("three exchanges (%d) scored below two (%d)", three.Score, two.Score)
		}
		if three.Score != 75 {
			t.Errorf("three exchanges score = %d, want 75", three.Score)
		}
	})

	t.Run("heavy transfer volume adds a capped boost", func(t *testing.T) {
		t.Parallel()

		txs := make([]model.Transaction, 0, 12)
		for i := 0; i < 12; i++ {
			txs = append(txs, nativeTransferTx(selfAddr, binanceAddr))
		}
		result := analyzer.Analyze(txs)
		if result.Score != 55 {
			t.Errorf("score = %d, want 40+15", result.Score)
		}
	})

	t.Run("token transfers are scanned too", func(t *testing.T) {
		t.Parallel()

		result := analyzer.Analyze([]model.Transaction{{
			Type: "TRANSFER",
			TokenTransfers: []model.TokenTransfer{
				{FromUserAccount: selfAddr, ToUserAccount: coinbaseAddr, TokenAmount: 5, Mint: "mint"},
			},
		}})
		if result.Score != 40 {
			t.Errorf("score = %d, want 40", result.Score)
		}
	})
}

// TestActivityAnalyzer tests the activity ladder and rate boost.
func TestActivityAnalyzer(t *testing.T) {
	t.Parallel()

	analyzer := NewActivityAnalyzer()

	t.Run("empty history scores zero", func(t *testing.T) {
		t.Parallel()

		result := analyzer.Analyze(nil)
		if result.Score != 0 {
			t.Errorf("score = %d, want 0", result.Score)
		}
		if result.DaysActive != 1 {
			t.Errorf("days active = %d, want 1", result.DaysActive)
		}
	})

	t.Run("five transactions over two days score 20", func(t *testing.T) {
		t.Parallel()

		base := int64(1_700_000_000)
		txs := make([]model.Transaction, 5)
		for i := range txs {
			txs[i] = model.Transaction{Timestamp: base + int64(i)*43_200}
		}
		result := analyzer.Analyze(txs)
		if result.Score != 20 {
			t.Errorf("score = %d, want 20", result.Score)
		}
		if result.DaysActive != 2 {
			t.Errorf("days active = %d, want 2", result.DaysActive)
		}
	})

	t.Run("high daily rate adds the boost", func(t *testing.T) {
		t.Parallel()

		base := int64(1_700_000_000)
		txs := make([]model.Transaction, 5)
		for i := range txs {
			txs[i] = model.Transaction{Timestamp: base + int64(i)}
		}
		result := analyzer.Analyze(txs)
		if result.Score != 25 {
			t.Errorf("score = %d, want 20+5", result.Score)
		}
		if result.TransactionsPerDay != 5 {
			t.Errorf("per day = %v, want 5", result.TransactionsPerDay)
		}
	})

	t.Run("missing timestamps default the day span", func(t *testing.T) {
		t.Parallel()

		txs := make([]model.Transaction, 7)
		result := analyzer.Analyze(txs)
		if result.DaysActive != 1 {
			t.Errorf("days active = %d, want 1", result.DaysActive)
		}
		if result.TransactionsPerDay != 7 {
			t.Errorf("per day = %v, want raw count", result.TransactionsPerDay)
		}
	})
}

// TestClusteringAnalyzer tests counterparty counting, ranking, and the
// fallback chain for sparse data.
func TestClusteringAnalyzer(t *testing.T) {
	t.Parallel()

	analyzer := NewClusteringAnalyzer(testRegistry())
	self := model.MustNewAddress(selfAddr)

	t.Run("counts each transfer touching a counterparty", func(t *testing.T) {
		t.Parallel()

		result := analyzer.Analyze([]model.Transaction{
			nativeTransferTx(selfAddr, randomAddr),
			nativeTransferTx(randomAddr, selfAddr),
			nativeTransferTx(selfAddr, jupiterAddr),
		}, self)

		if result.InteractedCount != 2 {
			t.Errorf("interacted count = %d, want 2", result.InteractedCount)
		}
		if result.Score != 10 {
			t.Errorf("score = %d, want 10", result.Score)
		}
		if result.Nodes[0].Address != randomAddr || result.Nodes[0].Count != 2 {
			t.Errorf("top node = %+v, want %s with count 2", result.Nodes[0], randomAddr)
		}
	})

	t.Run("top lists are sorted descending by count", func(t *testing.T) {
		t.Parallel()

		var txs []model.Transaction
		for i := 0; i < 3; i++ {
			txs = append(txs, nativeTransferTx(selfAddr, randomAddr))
		}
		txs = append(txs, nativeTransferTx(selfAddr, jupiterAddr))

		result := analyzer.Analyze(txs, self)
		if len(result.TopAddresses) != 2 {
			t.Fatalf("top addresses = %v", result.TopAddresses)
		}
		if result.TopAddresses[0] != model.ShortAddress(randomAddr) {
			t.Errorf("top address = %q, want truncated %s", result.TopAddresses[0], randomAddr)
		}
		for i := 1; i < len(result.Nodes); i++ {
			if result.Nodes[i].Count > result.Nodes[i-1].Count {
				t.Errorf("nodes not sorted descending at %d", i)
			}
		}
	})

	t.Run("classifies known protocol counterparties", func(t *testing.T) {
		t.Parallel()

		result := analyzer.Analyze([]model.Transaction{
			nativeTransferTx(selfAddr, jupiterAddr),
			nativeTransferTx(selfAddr, binanceAddr),
		}, self)

		types := map[string]string{}
		for _, node := range result.Nodes {
			types[node.Address] = node.Type
		}
		if types[jupiterAddr] != model.NodeTypeProtocol {
			t.Errorf("jupiter classified as %q", types[jupiterAddr])
		}
		if types[binanceAddr] != model.NodeTypeExchange {
			t.Errorf("binance classified as %q", types[binanceAddr])
		}
	})

	t.Run("falls back to balance deltas without transfers", func(t *testing.T) {
		t.Parallel()

		result := analyzer.Analyze([]model.Transaction{{
			Type: "UNKNOWN",
			AccountData: []model.AccountDelta{
				{Account: selfAddr, NativeBalanceChange: -100},
				{Account: randomAddr, NativeBalanceChange: 100},
				{Account: jupiterAddr, NativeBalanceChange: 0},
			},
		}}, self)

		if result.InteractedCount != 1 {
			t.Errorf("interacted count = %d, want 1", result.InteractedCount)
		}
	})

	t.Run("falls back to fee payers when nothing else counts", func(t *testing.T) {
		t.Parallel()

		txs := []model.Transaction{
			{Type: "UNKNOWN", FeePayer: randomAddr},
			{Type: "UNKNOWN", FeePayer: randomAddr},
			{Type: "UNKNOWN", FeePayer: randomAddr},
		}
		result := analyzer.Analyze(txs, self)

		if result.InteractedCount != 1 {
			t.Errorf("interacted count = %d, want 1", result.InteractedCount)
		}
		if len(result.Nodes) != 1 || result.Nodes[0].Count != 3 {
			t.Errorf("nodes = %+v, want fee payer with count 3", result.Nodes)
		}
	})
}

// TestIdentityAnalyzer tests identity increments and clamping.
func TestIdentityAnalyzer(t *testing.T) {
	t.Parallel()

	analyzer := NewIdentityAnalyzer()

	nft := func(name string) model.Asset {
		return model.Asset{
			ID:        "mint-" + name,
			Interface: model.InterfaceV1NFT,
			Content:   &model.AssetContent{Metadata: &model.AssetMetadata{Name: name}},
		}
	}

	t.Run("empty wallet scores zero", func(t *testing.T) {
		t.Parallel()

		result := analyzer.Analyze(nil, nil, nil)
		if result.Score != 0 {
			t.Errorf("score = %d, want 0", result.Score)
		}
	})

	t.Run("plain NFT holdings score the presence increment", func(t *testing.T) {
		t.Parallel()

		result := analyzer.Analyze([]model.Asset{nft("Cool Ape #7")}, nil, nil)
		if result.Score != identityNFTPresence {
			t.Errorf("score = %d, want %d", result.Score, identityNFTPresence)
		}
		if result.NFTCount != 1 {
			t.Errorf("nft count = %d, want 1", result.NFTCount)
		}
	})

	t.Run("domain ownership adds the domain increment", func(t *testing.T) {
		t.Parallel()

		withNFT := analyzer.Analyze([]model.Asset{nft("Cool Ape #7")}, nil, nil)
		withDomain := analyzer.Analyze([]model.Asset{nft("Cool Ape #7")}, []string{"alice"}, nil)
		if withDomain.Score-withNFT.Score != identityDomainOwnership {
			t.Errorf("domain increment = %d, want %d", withDomain.Score-withNFT.Score, identityDomainOwnership)
		}
	})

	t.Run("domain name NFTs count as revealing", func(t *testing.T) {
		t.Parallel()

		result := analyzer.Analyze([]model.Asset{nft("alice.sol")}, nil, nil)
		if len(result.RevealingNFTs) != 1 {
			t.Fatalf("revealing NFTs = %v", result.RevealingNFTs)
		}
		if result.Score != identityNFTPresence+identityRevealingNFT {
			t.Errorf("score = %d", result.Score)
		}
	})

	t.Run("social attributes count as revealing", func(t *testing.T) {
		t.Parallel()

		asset := nft("Member Card")
		asset.Content.Metadata.Attributes = []model.AssetAttribute{
			{TraitType: "twitter", Value: "@alice"},
		}
		result := analyzer.Analyze([]model.Asset{asset}, nil, nil)
		if len(result.RevealingNFTs) != 1 {
			t.Errorf("revealing NFTs = %v", result.RevealingNFTs)
		}
	})

	t.Run("identity references in the description count as revealing", func(t *testing.T) {
		t.Parallel()

		asset := nft("Cool Ape #7")
		asset.Content.Metadata.Description = "Registered to alice.sol - follow @alice on twitter"
		result := analyzer.Analyze([]model.Asset{asset}, nil, nil)
		if len(result.RevealingNFTs) != 1 {
			t.Fatalf("revealing NFTs = %v", result.RevealingNFTs)
		}
		if result.Score != identityNFTPresence+identityRevealingNFT {
			t.Errorf("score = %d, want %d", result.Score, identityNFTPresence+identityRevealingNFT)
		}
	})

	t.Run("mundane descriptions are not revealing", func(t *testing.T) {
		t.Parallel()

		asset := nft("Cool Ape #7")
		asset.Content.Metadata.Description = "One of 10,000 unique generative apes."
		result := analyzer.Analyze([]model.Asset{asset}, nil, nil)
		if len(result.RevealingNFTs) != 0 {
			t.Errorf("revealing NFTs = %v, want none", result.RevealingNFTs)
		}
	})

	t.Run("all increments together clamp below 100", func(t *testing.T) {
		t.Parallel()

		assets := make([]model.Asset, 0, 12)
		for i := 0; i < 11; i++ {
			assets = append(assets, nft("Profile PFP .sol"))
		}
		assets = append(assets, model.Asset{
			ID:        "dao-token",
			Interface: model.InterfaceFungibleToken,
			Content:   &model.AssetContent{Metadata: &model.AssetMetadata{Name: "Community", Symbol: "XDAO"}},
		})

		result := analyzer.Analyze(assets, []string{"a", "b", "c"}, []string{"alice"})
		if result.Score != boostCap {
			t.Errorf("score = %d, want capped at %d", result.Score, boostCap)
		}
	})
}

// TestFinancialAnalyzer tests net-worth estimation and its ladder.
func TestFinancialAnalyzer(t *testing.T) {
	t.Parallel()

	analyzer := NewFinancialAnalyzer()

	t.Run("zero everything scores zero", func(t *testing.T) {
		t.Parallel()

		result := analyzer.Analyze(nil, 0, nil)
		if result.Score != 0 || result.NetWorthUSD != 0 {
			t.Errorf("result = %+v, want zeroes", result)
		}
	})

	t.Run("tiny positive balance scores the floor", func(t *testing.T) {
		t.Parallel()

		result := analyzer.Analyze(nil, 0.01, nil)
		if result.NetWorthUSD != 2 {
			t.Errorf("net worth = %v, want 2", result.NetWorthUSD)
		}
		if result.Score != financialFloorScore {
			t.Errorf("score = %d, want %d", result.Score, financialFloorScore)
		}
	})

	t.Run("priced holdings climb the ladder", func(t *testing.T) {
		t.Parallel()

		assets := []model.Asset{{
			ID:        "mint",
			Interface: model.InterfaceFungibleToken,
			TokenInfo: &model.TokenInfo{
				Balance:   1,
				Decimals:  6,
				PriceInfo: &model.PriceInfo{TotalPrice: 900},
			},
		}}
		result := analyzer.Analyze(assets, 0.5, nil)
		if result.NetWorthUSD != 1000 {
			t.Errorf("net worth = %v, want 1000", result.NetWorthUSD)
		}
		if result.Score != 50 {
			t.Errorf("score = %d, want 50", result.Score)
		}
	})

	t.Run("positive portfolio value supersedes the naive sum", func(t *testing.T) {
		t.Parallel()

		assets := []model.Asset{{
			ID:        "mint",
			TokenInfo: &model.TokenInfo{PriceInfo: &model.PriceInfo{TotalPrice: 50}},
		}}
		portfolio := &model.PortfolioPnL{
			Tokens: []model.PortfolioToken{{Address: "mint", HoldingValue: 20_000}},
		}
		result := analyzer.Analyze(assets, 1, portfolio)
		if result.NetWorthUSD != 20_200 {
			t.Errorf("net worth = %v, want 20200", result.NetWorthUSD)
		}
		if result.Score != 65 {
			t.Errorf("score = %d, want 65", result.Score)
		}
	})
}

// TestNarrate tests risk narration triggers and ordering.
func TestNarrate(t *testing.T) {
	t.Parallel()

	t.Run("quiet wallet narrates low exposure", func(t *testing.T) {
		t.Parallel()

		risks := Narrate(CEXResult{}, ActivityResult{DaysActive: 1}, ClusteringResult{}, IdentityResult{})
		if len(risks) != 1 || !strings.Contains(risks[0], "low exposure") {
			t.Errorf("risks = %v", risks)
		}
	})

	t.Run("exchange linkage names the exchange", func(t *testing.T) {
		t.Parallel()

		risks := Narrate(
			CEXResult{Score: 40, Exchanges: []string{"Binance"}, TransferCount: 1},
			ActivityResult{DaysActive: 1},
			ClusteringResult{},
			IdentityResult{},
		)
		if len(risks) != 1 {
			t.Fatalf("risks = %v", risks)
		}
		if !strings.Contains(risks[0], "Binance") || !strings.Contains(risks[0], "KYC linkage") {
			t.Errorf("risk = %q", risks[0])
		}
	})

	t.Run("domain linkage mentions the full domain name", func(t *testing.T) {
		t.Parallel()

		risks := Narrate(CEXResult{}, ActivityResult{DaysActive: 1}, ClusteringResult{},
			IdentityResult{Domains: []string{"alice"}})
		found := false
		for _, risk := range risks {
			if strings.Contains(risk, "alice.sol") {
				found = true
			}
		}
		if !found {
			t.Errorf("no risk mentions alice.sol: %v", risks)
		}
	})

	t.Run("order is deterministic and strongest first", func(t *testing.T) {
		t.Parallel()

		cex := CEXResult{Exchanges: []string{"Kraken"}}
		activity := ActivityResult{TransactionCount: 150, DaysActive: 400}
		clustering := ClusteringResult{InteractedCount: 60}
		identity := IdentityResult{Domains: []string{"bob"}, Handles: []string{"bob_sol"}, NFTCount: 1}

		first := Narrate(cex, activity, clustering, identity)
		second := Narrate(cex, activity, clustering, identity)
		if !reflect.DeepEqual(first, second) {
			t.Error("narration not deterministic")
		}
		if len(first) != 7 {
			t.Fatalf("risks = %v", first)
		}
		if !strings.Contains(first[0], "KYC linkage") {
			t.Errorf("first risk = %q, want exchange linkage", first[0])
		}
		if !strings.Contains(first[len(first)-1], "wallet history") {
			t.Errorf("last risk = %q, want long history", first[len(first)-1])
		}
	})
}

// TestWeightedScore tests the aggregate formula.
func TestWeightedScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		breakdown model.ScoreBreakdown
		want      int
	}{
		{
			name:      "all zero",
			breakdown: model.ScoreBreakdown{},
			want:      0,
		},
		{
			name: "all max",
			breakdown: model.ScoreBreakdown{
				Identity: 100, KYCLinks: 100, Financial: 100, Clustering: 100, Activity: 100,
			},
			want: 100,
		},
		{
			name:      "exchange only",
			breakdown: model.ScoreBreakdown{KYCLinks: 40},
			want:      12,
		},
		{
			name: "mixed",
			breakdown: model.ScoreBreakdown{
				Identity: 30, KYCLinks: 40, Financial: 20, Clustering: 35, Activity: 50,
			},
			want: 37, // 12 + 8.75 + 10 + 3 + 3 = 36.75, rounds up
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := WeightedScore(tt.breakdown); got != tt.want {
				t.Errorf("WeightedScore(%+v) = %d, want %d", tt.breakdown, got, tt.want)
			}
		})
	}
}

// TestAnalyzerAnalyze tests the assembled report end to end.
func TestAnalyzerAnalyze(t *testing.T) {
	t.Parallel()

	analyzer := NewAnalyzer(testRegistry())
	base := int64(1_700_000_000)

	input := &Input{
		Address: model.MustNewAddress(selfAddr),
		Network: "mainnet",
		Transactions: []model.Transaction{
			{
				Signature: "sig1",
				Type:      "SWAP",
				Timestamp: base + 86_400,
				NativeTransfers: []model.NativeTransfer{
					{FromUserAccount: selfAddr, ToUserAccount: binanceAddr, Amount: model.LamportsPerSOL},
				},
			},
			{
				Signature:       "sig2",
				Type:            "TRANSFER",
				Timestamp:       base,
				NativeTransfers: []model.NativeTransfer{{FromUserAccount: randomAddr, ToUserAccount: selfAddr, Amount: model.LamportsPerSOL / 2}},
			},
		},
		Assets:  []model.Asset{{ID: "nft", Interface: model.InterfaceV1NFT}},
		Balance: 1,
		Domains: []string{"alice"},
		Portfolio: &model.PortfolioPnL{
			TotalRealizedPnL: -500,
			Tokens:           []model.PortfolioToken{{Address: "mint", HoldingValue: 100}},
		},
	}

	report := analyzer.Analyze(input)

	if report.Address != selfAddr || report.Network != "mainnet" {
		t.Errorf("report identity fields wrong: %s %s", report.Address, report.Network)
	}
	if want := WeightedScore(report.ScoreBreakdown); report.ExposureScore != want {
		t.Errorf("exposure score %d does not match breakdown (%d)", report.ExposureScore, want)
	}
	if report.ScoreBreakdown.KYCLinks != 40 {
		t.Errorf("kyc sub-score = %d, want 40", report.ScoreBreakdown.KYCLinks)
	}
	if report.RiskLevel != model.RiskLevelForScore(report.ExposureScore).String() {
		t.Errorf("risk level = %q", report.RiskLevel)
	}
	if report.RealizedLossesUSD != 500 {
		t.Errorf("realized losses = %v, want 500", report.RealizedLossesUSD)
	}
	if report.TradeCount != 1 {
		t.Errorf("trade count = %d, want 1", report.TradeCount)
	}
	if report.NetWorthUSD != 300 { // 1 SOL * 200 + 100 holding value
		t.Errorf("net worth = %v, want 300", report.NetWorthUSD)
	}
	if len(report.RecentTxSummary) != 2 {
		t.Fatalf("summaries = %+v", report.RecentTxSummary)
	}
	if report.RecentTxSummary[0].AmountUSD != 200 {
		t.Errorf("summary amount = %v, want 200", report.RecentTxSummary[0].AmountUSD)
	}
	if report.Links.Solscan != "https://solscan.io/account/"+selfAddr {
		t.Errorf("solscan link = %q", report.Links.Solscan)
	}

	// Identical input yields an identical report apart from the scan time.
	again := analyzer.Analyze(input)
	again.DateScanned = report.DateScanned
	if !reflect.DeepEqual(report, again) {
		t.Error("analysis is not deterministic for identical input")
	}
}

// TestSummaries tests the recent-transaction summary bound and fallbacks.
func TestSummaries(t *testing.T) {
	t.Parallel()

	txs := make([]model.Transaction, 15)
	for i := range txs {
		txs[i] = model.Transaction{Type: "TRANSFER", Timestamp: 1_700_000_000}
	}
	txs[0] = model.Transaction{} // no timestamp, no type

	summaries := Summaries(txs)
	if len(summaries) != recentSummaryCount {
		t.Fatalf("len = %d, want %d", len(summaries), recentSummaryCount)
	}
	if summaries[0].Date != "Unknown" {
		t.Errorf("date = %q, want Unknown", summaries[0].Date)
	}
	if summaries[0].Type != "UNKNOWN" {
		t.Errorf("type = %q, want UNKNOWN", summaries[0].Type)
	}
	if summaries[0].Description != "UNKNOWN transaction" {
		t.Errorf("description = %q", summaries[0].Description)
	}
	if summaries[1].Date != "2023-11-14" {
		t.Errorf("date = %q, want 2023-11-14", summaries[1].Date)
	}
}

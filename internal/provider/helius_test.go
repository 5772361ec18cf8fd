package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nao1215/walletscan/internal/config"
	"github.com/nao1215/walletscan/internal/model"
)

const testWallet = "JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4"

// TestHeliusTransactions tests transaction history fetching and pagination.
func TestHeliusTransactions(t *testing.T) {
	t.Parallel()

	t.Run("paginates with the before cursor until a short page", func(t *testing.T) {
		t.Parallel()

		var requests []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests = append(requests, r.URL.Query().Get("before"))

			if r.URL.Query().Get("api-key") != "test-key" {
				t.Errorf("api-key missing from query: %s", r.URL.RawQuery)
			}

			// First page is full, second page is short.
			var page []model.Transaction
			count := 3
			if len(requests) > 1 {
				count = 1
			}
			for i := 0; i < count; i++ {
				page = append(page, model.Transaction{
					Signature: fmt.Sprintf("sig-%d-%d", len(requests), i),
					Type:      "TRANSFER",
				})
			}
			if err := json.NewEncoder(w).Encode(page); err != nil {
				t.Fatal(err)
			}
		}))
		defer server.Close()

		client := NewHeliusClient("test-key", config.NetworkMainnet,
			WithHeliusBaseURLs(server.URL, server.URL),
			WithHeliusTransactionLimit(10),
		)
		client.pageSize = 3

		txs, err := client.Transactions(context.Background(), model.MustNewAddress(testWallet))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(txs) != 4 {
			t.Errorf("expected 4 transactions, got %d", len(txs))
		}
		if len(requests) != 2 {
			t.Fatalf("expected 2 pages, got %d", len(requests))
		}
		if requests[0] != "" {
			t.Errorf("first page should have no cursor, got %q", requests[0])
		}
		if requests[1] != "sig-1-2" {
			t.Errorf("second page cursor = %q, want last signature of first page", requests[1])
		}
	})

	t.Run("stops at the transaction limit", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var limit int
			if _, err := fmt.Sscanf(r.URL.Query().Get("limit"), "%d", &limit); err != nil {
				t.Fatalf("bad limit param: %v", err)
			}
			page := make([]model.Transaction, limit)
			for i := range page {
				page[i] = model.Transaction{Signature: fmt.Sprintf("sig-%d", i)}
			}
			if err := json.NewEncoder(w).Encode(page); err != nil {
				t.Fatal(err)
			}
		}))
		defer server.Close()

		client := NewHeliusClient("k", config.NetworkMainnet,
			WithHeliusBaseURLs(server.URL, server.URL),
			WithHeliusTransactionLimit(5),
		)
		client.pageSize = 2

		txs, err := client.Transactions(context.Background(), model.MustNewAddress(testWallet))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(txs) != 5 {
			t.Errorf("expected limit of 5 transactions, got %d", len(txs))
		}
	})

	t.Run("surfaces non-success status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := NewHeliusClient("bad-key", config.NetworkMainnet,
			WithHeliusBaseURLs(server.URL, server.URL))

		if _, err := client.Transactions(context.Background(), model.MustNewAddress(testWallet)); !errors.Is(err, ErrUnexpectedStatus) {
			t.Errorf("expected ErrUnexpectedStatus, got %v", err)
		}
	})
}

// TestHeliusAssets tests DAS asset fetching over JSON-RPC.
func TestHeliusAssets(t *testing.T) {
	t.Parallel()

	t.Run("decodes asset items", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req rpcRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatal(err)
			}
			if req.Method != "getAssetsByOwner" {
				t.Errorf("method = %q", req.Method)
			}

			fmt.Fprint(w, `{"result":{"items":[
				{"id":"mint1","interface":"V1_NFT","content":{"metadata":{"name":"Cool Ape #1"}}},
				{"id":"mint2","interface":"FungibleToken","token_info":{"balance":100,"decimals":6}}
			]}}`)
		}))
		defer server.Close()

		client := NewHeliusClient("k", config.NetworkMainnet,
			WithHeliusBaseURLs(server.URL, server.URL))

		assets, err := client.Assets(context.Background(), model.MustNewAddress(testWallet))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(assets) != 2 {
			t.Fatalf("expected 2 assets, got %d", len(assets))
		}
		if !assets[0].IsNFT() {
			t.Error("first asset should be an NFT")
		}
		if assets[0].Name() != "Cool Ape #1" {
			t.Errorf("asset name = %q", assets[0].Name())
		}
	})

	t.Run("surfaces rpc error objects", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"error":{"code":-32602,"message":"invalid params"}}`)
		}))
		defer server.Close()

		client := NewHeliusClient("k", config.NetworkMainnet,
			WithHeliusBaseURLs(server.URL, server.URL))

		if _, err := client.Assets(context.Background(), model.MustNewAddress(testWallet)); !errors.Is(err, ErrRPCFailure) {
			t.Errorf("expected ErrRPCFailure, got %v", err)
		}
	})
}

// TestHeliusBalance tests lamports-to-SOL conversion.
func TestHeliusBalance(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"result":{"context":{"slot":1},"value":2500000000}}`)
	}))
	defer server.Close()

	client := NewHeliusClient("k", config.NetworkMainnet,
		WithHeliusBaseURLs(server.URL, server.URL))

	balance, err := client.Balance(context.Background(), model.MustNewAddress(testWallet))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance != 2.5 {
		t.Errorf("balance = %v SOL, want 2.5", balance)
	}
}

// TestNewHeliusClientEndpoints tests per-network endpoint selection.
func TestNewHeliusClientEndpoints(t *testing.T) {
	t.Parallel()

	mainnet := NewHeliusClient("k", config.NetworkMainnet)
	if mainnet.apiBase != "https://api.helius.xyz" {
		t.Errorf("mainnet api base = %q", mainnet.apiBase)
	}

	devnet := NewHeliusClient("k", config.NetworkDevnet)
	if devnet.rpcBase != "https://devnet.helius-rpc.com" {
		t.Errorf("devnet rpc base = %q", devnet.rpcBase)
	}
}

package database

import (
	"context"
	"fmt"
	"testing"
	"time"
)

// TestCacheGetPut tests basic store and retrieve behavior.
func TestCacheGetPut(t *testing.T) {
	t.Parallel()

	cache, err := OpenCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := cache.Close(); err != nil {
			t.Errorf("close: %v", err)
		}
	}()

	ctx := context.Background()

	t.Run("miss on unknown key", func(t *testing.T) {
		_, ok, err := cache.Get(ctx, "mainnet:unknown")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected a miss")
		}
	})

	t.Run("hit after put", func(t *testing.T) {
		if err := cache.Put(ctx, "mainnet:addr", []byte(`{"balance":1}`)); err != nil {
			t.Fatalf("put: %v", err)
		}

		value, ok, err := cache.Get(ctx, "mainnet:addr")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatal("expected a hit")
		}
		if string(value) != `{"balance":1}` {
			t.Errorf("value = %s", value)
		}
	})

	t.Run("put overwrites", func(t *testing.T) {
		if err := cache.Put(ctx, "mainnet:addr", []byte(`{"balance":2}`)); err != nil {
			t.Fatalf("put: %v", err)
		}
		value, ok, err := cache.Get(ctx, "mainnet:addr")
		if err != nil || !ok {
			t.Fatalf("get: ok=%v err=%v", ok, err)
		}
		if string(value) != `{"balance":2}` {
			t.Errorf("value = %s", value)
		}
	})
}

// TestCacheExpiry tests that expired entries are treated as misses.
func TestCacheExpiry(t *testing.T) {
	t.Parallel()

	cache, err := OpenCache(t.TempDir(), WithCacheTTL(time.Minute))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = cache.Close() }()

	ctx := context.Background()
	base := time.Now()
	cache.now = func() time.Time { return base }

	if err := cache.Put(ctx, "k", []byte("v")); err != nil {
		t.Fatal(err)
	}

	cache.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, ok, err := cache.Get(ctx, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expired entry should miss")
	}

	count, err := cache.Len(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("expired entry should be removed, len = %d", count)
	}
}

// TestCacheCapacityEviction tests oldest-first eviction at capacity.
func TestCacheCapacityEviction(t *testing.T) {
	t.Parallel()

	cache, err := OpenCache(t.TempDir(), WithCacheCapacity(3))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = cache.Close() }()

	ctx := context.Background()
	base := time.Now()

	for i := 0; i < 5; i++ {
		offset := time.Duration(i) * time.Second
		cache.now = func() time.Time { return base.Add(offset) }
		if err := cache.Put(ctx, fmt.Sprintf("key-%d", i), []byte("v")); err != nil {
			t.Fatal(err)
		}
	}

	count, err := cache.Len(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Fatalf("len = %d, want capacity 3", count)
	}

	// The two oldest entries are gone, the newest three remain.
	for i := 0; i < 2; i++ {
		if _, ok, _ := cache.Get(ctx, fmt.Sprintf("key-%d", i)); ok {
			t.Errorf("key-%d should have been evicted", i)
		}
	}
	for i := 2; i < 5; i++ {
		if _, ok, _ := cache.Get(ctx, fmt.Sprintf("key-%d", i)); !ok {
			t.Errorf("key-%d should survive", i)
		}
	}
}

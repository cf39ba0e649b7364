package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLimiterAllowsUpToMax(t *testing.T) {
	limiter := NewMemoryLimiter(100, 15*time.Minute)
	ctx := context.Background()

	for i := 1; i <= 100; i++ {
		allowed, err := limiter.Allow(ctx, "1.2.3.4")
		if err != nil {
			t.Fatalf("allow: %v", err)
		}
		if !allowed {
			t.Fatalf("request %d should be allowed", i)
		}
	}

	allowed, err := limiter.Allow(ctx, "1.2.3.4")
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if allowed {
		t.Fatal("request 101 should be rejected")
	}
}

func TestMemoryLimiterKeysAreIndependent(t *testing.T) {
	limiter := NewMemoryLimiter(1, time.Minute)
	ctx := context.Background()

	if allowed, _ := limiter.Allow(ctx, "1.1.1.1"); !allowed {
		t.Fatal("first request for first key should be allowed")
	}
	if allowed, _ := limiter.Allow(ctx, "1.1.1.1"); allowed {
		t.Fatal("second request for first key should be rejected")
	}
	if allowed, _ := limiter.Allow(ctx, "2.2.2.2"); !allowed {
		t.Fatal("first request for second key should be allowed")
	}
}

func TestMemoryLimiterWindowSlides(t *testing.T) {
	limiter := NewMemoryLimiter(2, time.Minute)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	limiter.Allow(ctx, "k")
	limiter.Allow(ctx, "k")
	if allowed, _ := limiter.Allow(ctx, "k"); allowed {
		t.Fatal("third request inside window should be rejected")
	}

	// Advance past the window; earlier hits fall out.
	now = now.Add(61 * time.Second)
	if allowed, _ := limiter.Allow(ctx, "k"); !allowed {
		t.Fatal("request after window passed should be allowed")
	}
}

func TestMemoryLimiterEvictsIdleKeys(t *testing.T) {
	limiter := NewMemoryLimiter(5, time.Minute)
	ctx := context.Background()

	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return base }

	if _, err := limiter.Allow(ctx, "1.1.1.1"); err != nil {
		t.Fatalf("allow: %v", err)
	}
	if _, err := limiter.Allow(ctx, "2.2.2.2"); err != nil {
		t.Fatalf("allow: %v", err)
	}

	limiter.now = func() time.Time { return base.Add(2 * time.Minute) }
	if _, err := limiter.Allow(ctx, "3.3.3.3"); err != nil {
		t.Fatalf("allow: %v", err)
	}

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	if _, ok := limiter.hits["1.1.1.1"]; ok {
		t.Fatal("idle key 1.1.1.1 should have been evicted")
	}
	if _, ok := limiter.hits["2.2.2.2"]; ok {
		t.Fatal("idle key 2.2.2.2 should have been evicted")
	}
	if len(limiter.hits) != 1 {
		t.Fatalf("expected only the active key to remain, got %d entries", len(limiter.hits))
	}
}

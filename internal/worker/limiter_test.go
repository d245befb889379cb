package worker

import (
	"context"
	"testing"
	"time"
)

func TestNewLimiter(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 1 {
		t.Errorf("expected default burst 1 for negative input, got %d", l2.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "http://localhost:8000/chat"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
	if err := limiter.Wait(ctx, "https://api.groq.com/openai/v1"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_PerHost(t *testing.T) {
	limiter := NewLimiter(1, 1)
	backend := "http://localhost:8000"

	if !limiter.Allow(backend + "/chat") {
		t.Error("expected first request to be allowed")
	}
	if limiter.Allow(backend + "/health") {
		t.Error("expected second request to the same host to be throttled")
	}
	if !limiter.Allow("http://localhost:11434/api/generate") {
		t.Error("expected a different host to have its own bucket")
	}
}

func TestLimiter_Unlimited(t *testing.T) {
	limiter := NewLimiter(0, 1)
	for i := 0; i < 100; i++ {
		if !limiter.Allow("http://localhost:8000") {
			t.Fatalf("expected unlimited limiter to allow request %d", i)
		}
	}
}

func TestLimiter_WaitExceedsDeadline(t *testing.T) {
	limiter := NewLimiter(0.1, 1)
	url := "http://localhost:8000"
	limiter.Allow(url)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	if err := limiter.Wait(ctx, url); err == nil {
		t.Fatal("expected wait to fail")
	}
	if time.Since(start) > 40*time.Millisecond {
		t.Errorf("expected wait to fail early, took %v", time.Since(start))
	}
}

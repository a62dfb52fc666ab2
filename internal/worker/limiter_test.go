package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_AllowWithinBurst(t *testing.T) {
	limiter := NewLimiter(1, 3)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("https://example.com/page") {
			t.Errorf("Request %d within burst should be allowed", i+1)
		}
	}

	if limiter.Allow("https://example.com/page") {
		t.Error("Request beyond burst should be denied")
	}
}

func TestLimiter_DomainsAreIndependent(t *testing.T) {
	limiter := NewLimiter(1, 1)

	if !limiter.Allow("https://a.example/x") {
		t.Error("First request to a.example should be allowed")
	}
	if limiter.Allow("https://a.example/y") {
		t.Error("Second request to a.example should be denied")
	}
	if !limiter.Allow("https://b.example/x") {
		t.Error("b.example has its own budget and should be allowed")
	}
}

func TestLimiter_SetDomainRate(t *testing.T) {
	limiter := NewLimiter(1, 1)
	limiter.SetDomainRate("slow.example", 1, 2)

	if !limiter.Allow("https://slow.example/a") {
		t.Error("First request should be allowed")
	}
	if !limiter.Allow("https://slow.example/b") {
		t.Error("Second request within the overridden burst should be allowed")
	}
	if limiter.Allow("https://slow.example/c") {
		t.Error("Third request should exceed the burst")
	}
}

func TestLimiter_WaitHonorsContext(t *testing.T) {
	limiter := NewLimiter(0.001, 1)

	// Drain the burst so the next Wait would block for a long time
	if err := limiter.Wait(context.Background(), "https://example.com/"); err != nil {
		t.Fatalf("Expected first wait to pass, got %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := limiter.Wait(ctx, "https://example.com/"); err == nil {
		t.Error("Expected context deadline to interrupt the wait")
	}
}

func TestLimiter_RejectsUnparsableURL(t *testing.T) {
	limiter := NewLimiter(1, 1)

	if limiter.Allow("://not-a-url") {
		t.Error("Expected unparsable URL to be denied")
	}
}

package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock for deterministic window tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1700000000, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(cfg Config) (*Limiter, *fakeClock) {
	clock := newFakeClock()
	return NewLimiterWithClock(cfg, clock.Now), clock
}

func TestAllow_WindowLimit(t *testing.T) {
	limiter, clock := newTestLimiter(Config{MaxRequests: 5, Window: time.Minute})

	for i := 0; i < 5; i++ {
		if !limiter.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	if limiter.Allow("1.2.3.4") {
		t.Error("6th request within the window should be denied")
	}

	// A different identifier has its own window
	if !limiter.Allow("5.6.7.8") {
		t.Error("different identifier should not be affected")
	}

	// Past the window the identifier is allowed again
	clock.Advance(time.Minute + time.Millisecond)
	if !limiter.Allow("1.2.3.4") {
		t.Error("request after window expiry should be allowed")
	}
}

func TestAllow_DeniedAttemptNotRecorded(t *testing.T) {
	limiter, clock := newTestLimiter(Config{MaxRequests: 2, Window: time.Minute})

	limiter.Allow("client")
	clock.Advance(30 * time.Second)
	limiter.Allow("client")

	// Hammer while full; denials must not extend the lockout
	for i := 0; i < 10; i++ {
		clock.Advance(time.Second)
		if limiter.Allow("client") {
			t.Fatalf("request %d should be denied while window is full", i+1)
		}
	}

	// First timestamp falls out of the window at +60s from the start;
	// we're at +40s now, so 21s more is enough.
	clock.Advance(21 * time.Second)
	if !limiter.Allow("client") {
		t.Error("request should be allowed once the oldest entry leaves the window")
	}
}

func TestAllow_PartialWindowExpiry(t *testing.T) {
	limiter, clock := newTestLimiter(Config{MaxRequests: 3, Window: time.Minute})

	limiter.Allow("client")
	clock.Advance(40 * time.Second)
	limiter.Allow("client")
	limiter.Allow("client")

	if limiter.Allow("client") {
		t.Error("window is full, request should be denied")
	}

	// Only the first entry expires
	clock.Advance(25 * time.Second)
	if !limiter.Allow("client") {
		t.Error("one slot should have opened up")
	}
	if limiter.Allow("client") {
		t.Error("window should be full again")
	}
}

func TestSweep_DropsStaleIdentifiers(t *testing.T) {
	limiter, clock := newTestLimiter(Config{MaxRequests: 5, Window: time.Minute, SweepThreshold: 10})

	for i := 0; i < 10; i++ {
		limiter.Allow(fmt.Sprintf("stale-%d", i))
	}

	// All ten are now older than twice the window
	clock.Advance(3 * time.Minute)

	// Crossing the threshold triggers the sweep
	limiter.Allow("fresh")

	if got := limiter.TrackedIdentifiers(); got != 1 {
		t.Errorf("TrackedIdentifiers() = %d, want 1 (only the fresh identifier)", got)
	}
}

func TestSweep_TrimsMixedIdentifiers(t *testing.T) {
	limiter, clock := newTestLimiter(Config{MaxRequests: 5, Window: time.Minute, SweepThreshold: 2})

	// Two entries in one window, then age them so the first crosses the
	// 2x-window cutoff while the second does not.
	limiter.Allow("mixed")
	clock.Advance(30 * time.Second)
	limiter.Allow("mixed")
	clock.Advance(100 * time.Second)

	limiter.Allow("a")
	limiter.Allow("b") // crosses threshold, sweeps

	// The mixed identifier is trimmed, not deleted
	if got := limiter.TrackedIdentifiers(); got != 3 {
		t.Errorf("TrackedIdentifiers() = %d, want 3", got)
	}
}

func TestAllow_EmptyIdentifierSharesBucket(t *testing.T) {
	limiter, _ := newTestLimiter(Config{MaxRequests: 2, Window: time.Minute})

	if !limiter.Allow("") || !limiter.Allow("") {
		t.Fatal("first two anonymous requests should be allowed")
	}
	if limiter.Allow("") {
		t.Error("anonymous requests share one bucket and should now be denied")
	}
}

func TestAllow_ConcurrentSameIdentifier(t *testing.T) {
	limiter, _ := newTestLimiter(Config{MaxRequests: 50, Window: time.Minute})

	var wg sync.WaitGroup
	allowed := make(chan bool, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed <- limiter.Allow("shared")
		}()
	}
	wg.Wait()
	close(allowed)

	count := 0
	for ok := range allowed {
		if ok {
			count++
		}
	}
	if count != 50 {
		t.Errorf("allowed %d concurrent requests, want exactly 50", count)
	}
}

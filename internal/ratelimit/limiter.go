// Package ratelimit implements a process-local sliding-window request
// limiter keyed by client identifier.
//
// State lives in memory only: limits are enforced per running instance and
// reset on restart. Deployments with more than one instance under-enforce
// the combined limit; this is an accepted limitation of the design.
package ratelimit

import (
	"sync"
	"time"
)

// Config holds sliding-window settings for a Limiter.
type Config struct {
	// MaxRequests is the number of allowed requests per identifier per window.
	MaxRequests int
	// Window is the length of the sliding window.
	Window time.Duration
	// SweepThreshold is the number of tracked identifiers above which a
	// cleanup sweep runs. It bounds memory, not correctness.
	SweepThreshold int
}

// DefaultConfig returns the default limiter settings: 5 requests per minute,
// sweeping once more than 1000 identifiers are tracked.
func DefaultConfig() Config {
	return Config{
		MaxRequests:    5,
		Window:         time.Minute,
		SweepThreshold: 1000,
	}
}

// Limiter tracks request timestamps per identifier and answers whether a new
// request fits in the current window. An empty identifier is a valid key;
// callers that cannot attribute a request all share that one bucket.
type Limiter struct {
	config Config
	now    func() time.Time

	mu          sync.Mutex
	submissions map[string][]int64 // identifier -> timestamps (ms since epoch)
}

// NewLimiter creates a limiter with the given settings.
func NewLimiter(config Config) *Limiter {
	return NewLimiterWithClock(config, time.Now)
}

// NewLimiterWithClock creates a limiter with an injected clock so tests can
// advance time without sleeping.
func NewLimiterWithClock(config Config, now func() time.Time) *Limiter {
	if config.MaxRequests <= 0 {
		config.MaxRequests = DefaultConfig().MaxRequests
	}
	if config.Window <= 0 {
		config.Window = DefaultConfig().Window
	}
	if config.SweepThreshold <= 0 {
		config.SweepThreshold = DefaultConfig().SweepThreshold
	}
	return &Limiter{
		config:      config,
		now:         now,
		submissions: make(map[string][]int64),
	}
}

// Allow reports whether a request from identifier fits in the current window
// and, if so, records it. A denied request is not recorded, so hammering a
// full window does not extend the lockout.
func (l *Limiter) Allow(identifier string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now().UnixMilli()
	windowStart := now - l.config.Window.Milliseconds()

	recent := l.submissions[identifier][:0:0]
	for _, ts := range l.submissions[identifier] {
		if ts > windowStart {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= l.config.MaxRequests {
		l.submissions[identifier] = recent
		return false
	}

	recent = append(recent, now)
	l.submissions[identifier] = recent

	if len(l.submissions) > l.config.SweepThreshold {
		l.sweep(now)
	}

	return true
}

// TrackedIdentifiers returns the number of identifiers currently held.
func (l *Limiter) TrackedIdentifiers() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.submissions)
}

// sweep drops identifiers whose every timestamp predates twice the window
// and trims mixed ones to that looser cutoff. Entries younger than 2x the
// window but older than the window may transiently survive; they are
// filtered out again on the next Allow for that identifier.
// Caller must hold l.mu.
func (l *Limiter) sweep(now int64) {
	cutoff := now - 2*l.config.Window.Milliseconds()
	for key, times := range l.submissions {
		filtered := times[:0:0]
		for _, ts := range times {
			if ts > cutoff {
				filtered = append(filtered, ts)
			}
		}
		if len(filtered) == 0 {
			delete(l.submissions, key)
		} else {
			l.submissions[key] = filtered
		}
	}
}

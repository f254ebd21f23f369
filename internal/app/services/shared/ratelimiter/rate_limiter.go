package ratelimiter

import (
	"medical-portal/internal/app/contracts"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LoginLimiter throttles login attempts per key (the caller's IP). A key
// that runs out of tokens is blocked for blockTime. Keys left idle for a
// full window with no active block are evicted, so the table stays bounded
// by the set of recently active callers.
type LoginLimiter struct {
	entries   map[string]*limiterEntry
	mu        sync.Mutex
	attempts  int
	window    time.Duration
	blockTime time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type limiterEntry struct {
	limiter      *rate.Limiter
	blockedUntil time.Time
	lastSeen     time.Time
}

func NewLoginLimiter(attempts int, window, blockTime time.Duration) contracts.LoginLimiter {
	return newLoginLimiter(attempts, window, blockTime, time.Now)
}

func newLoginLimiter(attempts int, window, blockTime time.Duration, now func() time.Time) *LoginLimiter {
	if attempts <= 0 {
		attempts = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LoginLimiter{
		entries:   make(map[string]*limiterEntry),
		attempts:  attempts,
		window:    window,
		blockTime: blockTime,
		lastSweep: now(),
		now:       now,
	}
}

func (l *LoginLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	entry, exists := l.entries[key]
	if exists && !entry.blockedUntil.IsZero() {
		if now.Before(entry.blockedUntil) {
			entry.lastSeen = now
			return false
		}
		exists = false
	}
	if !exists {
		entry = &limiterEntry{
			limiter: rate.NewLimiter(rate.Every(l.window/time.Duration(l.attempts)), l.attempts),
		}
		l.entries[key] = entry
	}
	entry.lastSeen = now

	if !entry.limiter.AllowN(now, 1) {
		entry.blockedUntil = now.Add(l.blockTime)
		return false
	}
	return true
}

// Len reports how many keys are currently tracked.
func (l *LoginLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// sweep runs at most once per window. An idle entry's bucket has refilled,
// so dropping it loses no state.
func (l *LoginLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.window {
		return
	}
	l.lastSweep = now
	for key, entry := range l.entries {
		if now.Before(entry.blockedUntil) {
			continue
		}
		if now.Sub(entry.lastSeen) >= l.window {
			delete(l.entries, key)
		}
	}
}

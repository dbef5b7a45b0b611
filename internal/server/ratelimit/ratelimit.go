// Package ratelimit throttles the resume API per client and endpoint with
// token buckets. Parse, score, and export requests burn CPU proportional to
// the posted text, so those endpoints carry tighter budgets than the read
// paths; the budgets live in DefaultEndpointConfigs.
package ratelimit

import (
	"sync"
	"time"
)

// idleCutoff is how long a client's bucket may sit unused before the sweeper
// drops it.
const idleCutoff = time.Hour

// bucket is one client+endpoint token bucket. Tokens refill continuously at
// refill per second up to capacity; a request consumes one token.
type bucket struct {
	mu       sync.Mutex
	capacity float64
	refill   float64
	tokens   float64
	updated  time.Time
	lastSeen time.Time
}

// take refills the bucket for the elapsed time, then tries to consume one
// token. It reports the decision plus the remaining tokens and the time at
// which the bucket is full again.
func (b *bucket) take(now time.Time) (allowed bool, remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = min(b.capacity, b.tokens+now.Sub(b.updated).Seconds()*b.refill)
	b.updated = now
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		allowed = true
	}

	reset = now
	if b.tokens < b.capacity {
		secondsUntilFull := (b.capacity - b.tokens) / b.refill
		reset = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	}
	return allowed, int(b.tokens), reset
}

func (b *bucket) idleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastSeen.Before(cutoff)
}

// Info describes the rate-limit decision for one request; the server turns
// it into X-RateLimit-* headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter tracks one bucket per client+endpoint pair and sweeps buckets of
// idle clients in the background.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config
	stop    chan struct{}
}

// NewLimiter creates a limiter for the given configuration. A nil config
// enables limiting with the default budgets.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			EndpointConfigs: DefaultEndpointConfigs(),
		}
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}
	if config.Enabled && config.CleanupInterval > 0 {
		l.stop = make(chan struct{})
		go l.sweep(config.CleanupInterval)
	}
	return l
}

// Allow decides whether a request from clientID against path/method fits the
// endpoint's budget.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	budget := l.config.match(path, method)
	if budget.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	// Prefix budgets pool their routes into one bucket, so /export/csv and
	// /export/xml draw from the same allowance.
	scope := budget.Path
	if scope == "" {
		scope = path
	}
	b := l.bucket(clientID+" "+method+" "+scope, budget)
	allowed, remaining, reset := b.take(time.Now())

	info := Info{
		Allowed:   allowed,
		Limit:     budget.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !allowed {
		if wait := time.Until(reset); wait > 0 {
			info.RetryAfter = wait
		}
	}
	return allowed, info
}

func (l *Limiter) bucket(key string, budget EndpointConfig) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}

	capacity := budget.Burst
	if capacity <= 0 {
		capacity = budget.Limit
	}
	now := time.Now()
	b := &bucket{
		capacity: float64(capacity),
		refill:   float64(budget.Limit) / budget.Window.Seconds(),
		tokens:   float64(capacity),
		updated:  now,
		lastSeen: now,
	}
	l.buckets[key] = b
	return b
}

// sweep periodically drops buckets of clients that have gone quiet, so
// one-off uploaders do not pin memory for the life of the server.
func (l *Limiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-idleCutoff)
			l.mu.Lock()
			for key, b := range l.buckets {
				if b.idleSince(cutoff) {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		case <-l.stop:
			return
		}
	}
}

// Stop terminates the background sweeper.
func (l *Limiter) Stop() {
	if l.stop != nil {
		close(l.stop)
	}
}

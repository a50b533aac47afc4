package ratelimit

import (
	"math"
	"sync"
	"time"
)

// Policy configures a token bucket for a single operation.
// Rate tokens refill over each Period, accumulating up to Capacity.
type Policy struct {
	Rate     float64
	Period   time.Duration
	Capacity float64
}

// Decision is the outcome of an admission check. RetryAfter is only
// meaningful when Admitted is false.
type Decision struct {
	Admitted   bool
	RetryAfter time.Duration
}

// Limiter performs per-operation, per-key admission control.
type Limiter interface {
	Consume(operation string, key string) Decision
}

type bucketKey struct {
	operation string
	key       string
}

type bucketState struct {
	tokens     float64
	lastRefill time.Time
}

// TokenBucket implements Limiter with continuously refilling token buckets.
// The operation->Policy mapping is fixed at construction; operations without
// a policy are always admitted.
type TokenBucket struct {
	policies map[string]Policy
	clock    Clock

	mu      sync.Mutex
	buckets map[bucketKey]*bucketState
}

// NewTokenBucket creates a token bucket limiter using the system clock.
func NewTokenBucket(policies map[string]Policy) *TokenBucket {
	return NewTokenBucketWithClock(policies, NewSystemClock())
}

// NewTokenBucketWithClock creates a token bucket limiter with an injected clock.
func NewTokenBucketWithClock(policies map[string]Policy, clock Clock) *TokenBucket {
	return &TokenBucket{
		policies: policies,
		clock:    clock,
		buckets:  make(map[bucketKey]*bucketState),
	}
}

// Consume attempts to take one token from the bucket for (operation, key).
// The check-and-consume is a single atomic unit: under concurrent calls for
// the same key, exactly the number of available tokens may be admitted.
func (tb *TokenBucket) Consume(operation string, key string) Decision {
	policy, configured := tb.policies[operation]
	if !configured {
		return Decision{Admitted: true}
	}

	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := tb.clock.Now()
	bk := bucketKey{operation: operation, key: key}

	state, exists := tb.buckets[bk]
	if !exists {
		state = &bucketState{tokens: policy.Capacity, lastRefill: now}
		tb.buckets[bk] = state
	}

	// Refill based on elapsed time, capped at capacity.
	elapsed := now.Sub(state.lastRefill)
	refill := elapsed.Seconds() * policy.Rate / policy.Period.Seconds()
	state.tokens = math.Min(policy.Capacity, state.tokens+refill)
	state.lastRefill = now

	if state.tokens >= 1 {
		state.tokens--
		return Decision{Admitted: true}
	}

	// State was refreshed above so repeated checks don't double-charge.
	retryAfter := time.Duration((1 - state.tokens) * float64(policy.Period) / policy.Rate)
	return Decision{Admitted: false, RetryAfter: retryAfter}
}

package auth

import (
	"context"
	"sync"
	"time"

	"github.com/gleasonw/lidnd/internal/errors"
	"github.com/gleasonw/lidnd/internal/pkg/clock"
)

const defaultMaxEntries = 4096

// cacheEntry remembers when a token last validated and who it belonged
// to at that moment.
type cacheEntry struct {
	validatedAt time.Time
	principal   Principal
}

// CachingValidator decorates another Validator with a TTL cache keyed by
// token, so repeated requests within the TTL skip the identity provider
// round trip. It is an injected component with no package-level state;
// every instance owns its map and takes its notion of time from an
// injected clock.
type CachingValidator struct {
	next       Validator
	clock      clock.Clock
	ttl        time.Duration
	maxEntries int

	mu      sync.Mutex
	entries map[string]cacheEntry
}

// CachingValidatorConfig contains configuration for the caching validator.
type CachingValidatorConfig struct {
	// Next is the validator consulted on cache misses
	Next Validator
	// TTL bounds how long a successful validation is reused
	TTL time.Duration
	// Clock is optional; the real clock is used when nil
	Clock clock.Clock
	// MaxEntries bounds the cache size (default 4096)
	MaxEntries int
}

// Validate validates the CachingValidatorConfig.
func (cfg *CachingValidatorConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Next == nil {
		vb.RequiredField("Next")
	}
	if cfg.TTL <= 0 {
		vb.InvalidField("TTL", "must be positive")
	}
	return vb.Build()
}

// NewCachingValidator creates a TTL-caching decorator around another
// validator.
func NewCachingValidator(cfg *CachingValidatorConfig) (*CachingValidator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}

	return &CachingValidator{
		next:       cfg.Next,
		clock:      c,
		ttl:        cfg.TTL,
		maxEntries: maxEntries,
		entries:    make(map[string]cacheEntry),
	}, nil
}

// Validate returns the cached principal when the token validated within
// the TTL, and otherwise revalidates through the wrapped validator.
// Failed validations are never cached.
func (v *CachingValidator) Validate(ctx context.Context, token string) (*Principal, error) {
	now := v.clock.Now()

	v.mu.Lock()
	if entry, ok := v.entries[token]; ok {
		if now.Sub(entry.validatedAt) < v.ttl {
			p := entry.principal
			v.mu.Unlock()
			return &p, nil
		}
		delete(v.entries, token)
	}
	v.mu.Unlock()

	principal, err := v.next.Validate(ctx, token)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	if len(v.entries) >= v.maxEntries {
		v.evictLocked(now)
	}
	v.entries[token] = cacheEntry{validatedAt: now, principal: *principal}
	v.mu.Unlock()

	return principal, nil
}

// evictLocked drops expired entries; if nothing expired, it drops an
// arbitrary entry so the cache stays bounded. Callers hold v.mu.
func (v *CachingValidator) evictLocked(now time.Time) {
	for token, entry := range v.entries {
		if now.Sub(entry.validatedAt) >= v.ttl {
			delete(v.entries, token)
		}
	}
	if len(v.entries) >= v.maxEntries {
		for token := range v.entries {
			delete(v.entries, token)
			break
		}
	}
}

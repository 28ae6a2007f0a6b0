// Package screens keeps live list and form instances between requests.
//
// Every page load opens a new screen with its own synchronizer or editor, so
// two tabs never share state. A screen is only visible to the session token
// that opened it.
package screens

import (
	"sync"
	"time"

	"github.com/louisbranch/megamix/internal/platform/id"
	"github.com/louisbranch/megamix/internal/platform/timeouts"
)

// Default capacity limits. Opening past a limit evicts the least recently
// used screen in scope.
const (
	DefaultMaxPerToken = 32
	DefaultMaxScreens  = 4096
)

type entry struct {
	token     string
	value     any
	expiresAt time.Time
	used      uint64
}

// Registry stores screens keyed by an opaque id.
type Registry struct {
	mu          sync.Mutex
	entries     map[string]entry
	ttl         time.Duration
	cleanup     time.Duration
	lastCleanup time.Time
	maxPerToken int
	maxScreens  int
	tick        uint64
	now         func() time.Time
	newID       func() (string, error)
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// WithIDGenerator overrides screen id generation.
func WithIDGenerator(newID func() (string, error)) Option {
	return func(r *Registry) {
		if newID != nil {
			r.newID = newID
		}
	}
}

// WithLimits caps screens per token and in total. Non-positive values keep
// the defaults.
func WithLimits(perToken, total int) Option {
	return func(r *Registry) {
		if perToken > 0 {
			r.maxPerToken = perToken
		}
		if total > 0 {
			r.maxScreens = total
		}
	}
}

// NewRegistry builds a registry whose screens expire after ttl of inactivity.
func NewRegistry(ttl time.Duration, opts ...Option) *Registry {
	if ttl <= 0 {
		ttl = timeouts.ScreenTTL
	}
	r := &Registry{
		entries: make(map[string]entry),
		ttl:     ttl,
		cleanup: timeouts.ScreenCleanup,
		now:     time.Now,
		newID:   id.NewID,

		maxPerToken: DefaultMaxPerToken,
		maxScreens:  DefaultMaxScreens,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open registers value for token and returns its screen id.
func (r *Registry) Open(token string, value any) (string, error) {
	screenID, err := r.newID()
	if err != nil {
		return "", err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	r.cleanupLocked(now)
	r.evictLocked(token)
	r.tick++
	r.entries[screenID] = entry{token: token, value: value, expiresAt: now.Add(r.ttl), used: r.tick}
	return screenID, nil
}

// Get returns the screen for id when it belongs to token and has not expired.
// A hit extends the expiry.
func (r *Registry) Get(screenID, token string) (any, bool) {
	if r == nil || screenID == "" {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	r.cleanupLocked(now)
	e, ok := r.entries[screenID]
	if !ok {
		return nil, false
	}
	if now.After(e.expiresAt) {
		delete(r.entries, screenID)
		return nil, false
	}
	if e.token != token {
		return nil, false
	}
	e.expiresAt = now.Add(r.ttl)
	r.tick++
	e.used = r.tick
	r.entries[screenID] = e
	return e.value, true
}

// Close drops a screen.
func (r *Registry) Close(screenID string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, screenID)
}

// CloseToken drops every screen opened by token.
func (r *Registry) CloseToken(token string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, e := range r.entries {
		if e.token == token {
			delete(r.entries, key)
		}
	}
}

// Len returns the number of stored screens, expired or not.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// evictLocked makes room for one more screen owned by token.
func (r *Registry) evictLocked(token string) {
	for {
		owned := 0
		ownedKey, globalKey := "", ""
		var ownedUsed, globalUsed uint64
		for key, e := range r.entries {
			if globalKey == "" || e.used < globalUsed {
				globalKey, globalUsed = key, e.used
			}
			if e.token != token {
				continue
			}
			owned++
			if ownedKey == "" || e.used < ownedUsed {
				ownedKey, ownedUsed = key, e.used
			}
		}
		switch {
		case owned >= r.maxPerToken:
			delete(r.entries, ownedKey)
		case len(r.entries) >= r.maxScreens:
			delete(r.entries, globalKey)
		default:
			return
		}
	}
}

func (r *Registry) cleanupLocked(now time.Time) {
	if now.Sub(r.lastCleanup) < r.cleanup {
		return
	}
	for key, e := range r.entries {
		if now.After(e.expiresAt) {
			delete(r.entries, key)
		}
	}
	r.lastCleanup = now
}

// Lookup fetches a screen and asserts its type.
func Lookup[T any](r *Registry, screenID, token string) (T, bool) {
	var zero T
	value, ok := r.Get(screenID, token)
	if !ok {
		return zero, false
	}
	typed, ok := value.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

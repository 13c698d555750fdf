package auth

import (
	"sync"
	"time"
)

// TokenBlacklist records revoked token ids (jti) until they expire on their
// own. Logout adds the current token; the auth middleware rejects anything
// listed here.
type TokenBlacklist struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

// NewTokenBlacklist creates a blacklist and starts a background sweep that
// drops entries whose tokens have expired anyway.
func NewTokenBlacklist(sweepInterval time.Duration) *TokenBlacklist {
	b := &TokenBlacklist{revoked: make(map[string]time.Time)}
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for range ticker.C {
			b.sweep()
		}
	}()
	return b
}

// Revoke marks a token id as unusable until exp.
func (b *TokenBlacklist) Revoke(jti string, exp time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[jti] = exp
}

// IsRevoked reports whether a token id has been revoked.
func (b *TokenBlacklist) IsRevoked(jti string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.revoked[jti]
	return ok
}

func (b *TokenBlacklist) sweep() {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := time.Now()
	for jti, exp := range b.revoked {
		if exp.Before(now) {
			delete(b.revoked, jti)
		}
	}
}

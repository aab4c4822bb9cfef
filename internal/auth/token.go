// Package auth manages the identity session: the authentication
// exchange against the identity service and the cached bearer token
// every downstream request attaches.
package auth

import (
	"sync"
	"time"
)

// Token is a bearer token issued by the identity service together with
// its server-assigned expiry. The two are always set together.
type Token struct {
	ID        string    `json:"id"`
	ExpiresAt time.Time `json:"expires"`
}

// Valid reports whether the token can still be attached to a request.
// The boundary counts as valid: a token expiring exactly now is usable.
func (t *Token) Valid() bool {
	return t.ValidAt(time.Now())
}

// ValidAt reports validity against an explicit instant.
func (t *Token) ValidAt(now time.Time) bool {
	if t == nil || t.ID == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return !now.After(t.ExpiresAt)
}

// TokenStore holds the current token behind a lock so a reader never
// observes a token paired with the wrong expiry.
type TokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the stored token, or nil.
func (s *TokenStore) Get() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set replaces the stored token and expiry in one step.
func (s *TokenStore) Set(token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// Clear removes the stored token.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = nil
}

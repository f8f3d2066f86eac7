// Package auth manages UCMDB bearer tokens: acquisition through the
// authenticate endpoint, thread-safe storage, and refresh.
package auth

import (
	"context"
	"sync"
	"time"
)

// expiryBuffer is subtracted from the token lifetime so requests never go
// out with a token about to lapse mid-flight.
const expiryBuffer = 30 * time.Second

// TokenManager provides access tokens for API requests.
type TokenManager interface {
	// GetToken returns a valid access token, acquiring or refreshing one
	// if necessary.
	GetToken(ctx context.Context) (string, error)
	// RefreshToken forces acquisition of a fresh token.
	RefreshToken(ctx context.Context) error
	// SetToken manually installs a token. A zero expiresAt means the token
	// never expires.
	SetToken(token string, expiresAt time.Time)
}

// Token is a bearer token with optional expiry.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// Valid reports whether the token can still be used. Tokens within the
// expiry buffer count as invalid so they are refreshed before use.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(expiryBuffer).Before(t.ExpiresAt)
}

// TokenStore holds a token with thread-safe access.
type TokenStore struct {
	mutex sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the stored token, or nil if none has been set.
func (s *TokenStore) Get() *Token {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.token
}

// Set replaces the stored token.
func (s *TokenStore) Set(token *Token) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.token = token
}

// Clear removes the stored token.
func (s *TokenStore) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.token = nil
}

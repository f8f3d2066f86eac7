package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/kwpaschal/ucmdb-rest/internal/constants"
	"github.com/kwpaschal/ucmdb-rest/pkg/ucmdb"
)

// authenticateRequest is the payload for the UCMDB authenticate endpoint.
type authenticateRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	ClientContext int    `json:"clientContext"`
}

// authenticateResponse is the payload returned by the authenticate endpoint.
type authenticateResponse struct {
	Token string `json:"token"`
}

// PasswordTokenManager acquires tokens from the UCMDB authenticate endpoint
// using username/password credentials. Tokens are cached until they expire
// or a refresh is forced.
type PasswordTokenManager struct {
	baseURL       string
	username      string
	password      string
	clientContext int
	httpClient    *http.Client
	store         *TokenStore
	mutex         sync.Mutex
}

// PasswordOption configures a PasswordTokenManager.
type PasswordOption func(*PasswordTokenManager)

// WithHTTPClient overrides the HTTP client used for the authenticate call.
func WithHTTPClient(client *http.Client) PasswordOption {
	return func(m *PasswordTokenManager) {
		m.httpClient = client
	}
}

// NewPasswordTokenManager creates a token manager that authenticates against
// baseURL with the given credentials.
func NewPasswordTokenManager(baseURL, username, password string, clientContext int, opts ...PasswordOption) *PasswordTokenManager {
	manager := &PasswordTokenManager{
		baseURL:       baseURL,
		username:      username,
		password:      password,
		clientContext: clientContext,
		httpClient:    &http.Client{Timeout: constants.DefaultHTTPTimeout},
		store:         NewTokenStore(),
	}

	for _, opt := range opts {
		opt(manager)
	}

	return manager
}

// GetToken returns the cached token, authenticating first if no valid token
// is held.
func (m *PasswordTokenManager) GetToken(ctx context.Context) (string, error) {
	if token := m.store.Get(); token.Valid() {
		return token.AccessToken, nil
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	// Another caller may have authenticated while we waited for the lock.
	if token := m.store.Get(); token.Valid() {
		return token.AccessToken, nil
	}

	token, err := m.authenticate(ctx)
	if err != nil {
		return "", err
	}

	m.store.Set(token)

	return token.AccessToken, nil
}

// RefreshToken discards the cached token and authenticates again.
func (m *PasswordTokenManager) RefreshToken(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	token, err := m.authenticate(ctx)
	if err != nil {
		return err
	}

	m.store.Set(token)

	return nil
}

// SetToken manually installs a token, bypassing authentication.
func (m *PasswordTokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}

// authenticate performs the authenticate call and returns the new token.
func (m *PasswordTokenManager) authenticate(ctx context.Context) (*Token, error) {
	payload, err := json.Marshal(authenticateRequest{
		Username:      m.username,
		Password:      m.password,
		ClientContext: m.clientContext,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling authenticate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/authenticate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating authenticate request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing authenticate request: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading authenticate response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ucmdb.ErrAuthenticationFailed, resp.StatusCode)
	}

	var authResp authenticateResponse

	err = json.Unmarshal(body, &authResp)
	if err != nil {
		return nil, fmt.Errorf("parsing authenticate response: %w", err)
	}

	if authResp.Token == "" {
		return nil, fmt.Errorf("%w: response contained no token", ucmdb.ErrAuthenticationFailed)
	}

	return &Token{
		AccessToken: authResp.Token,
		TokenType:   "bearer",
		ExpiresAt:   time.Now().Add(constants.TokenLifetime),
	}, nil
}

// StaticTokenManager serves a fixed token. Refresh is not supported.
type StaticTokenManager struct {
	store *TokenStore
}

// NewStaticTokenManager creates a token manager around a pre-acquired token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	store := NewTokenStore()
	store.Set(&Token{AccessToken: token, TokenType: "bearer"})

	return &StaticTokenManager{store: store}
}

// GetToken returns the static token.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	token := m.store.Get()
	if !token.Valid() {
		return "", ucmdb.ErrAuthenticationFailed
	}

	return token.AccessToken, nil
}

// RefreshToken always fails: a static token has no credentials behind it.
func (m *StaticTokenManager) RefreshToken(ctx context.Context) error {
	return ucmdb.ErrStaticTokenNoRefresh
}

// SetToken replaces the static token.
func (m *StaticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{AccessToken: token, TokenType: "bearer", ExpiresAt: expiresAt})
}

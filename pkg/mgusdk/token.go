package mgusdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/mgu/pkg/slogx"
	"golang.org/x/sync/singleflight"
)

const (
	// TokenPath is the provider's OAuth2 token endpoint.
	TokenPath = "/sbauth/oauth/token"

	// RefreshSkew is how long before expiry a cached token is considered stale.
	RefreshSkew = 300 * time.Second
)

// TokenResponse is the provider's token endpoint response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope,omitempty"`
}

// TokenManager caches a single bearer token and refreshes it with the
// client-credentials grant. Concurrent refreshes are collapsed into one
// token request.
type TokenManager struct {
	creds      Credentials
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time

	mu        sync.RWMutex
	token     string
	expiresAt time.Time

	refreshGroup singleflight.Group
}

// NewTokenManager creates an empty (unauthenticated) token cache.
func NewTokenManager(creds Credentials, hc *http.Client, logger *slog.Logger, now func() time.Time) *TokenManager {
	if hc == nil {
		hc = &http.Client{Timeout: DefaultTimeout}
	}
	if logger == nil {
		logger = slogx.Discard()
	}
	if now == nil {
		now = time.Now
	}
	return &TokenManager{
		creds:      creds,
		httpClient: hc,
		logger:     logger,
		now:        now,
	}
}

// Token returns a cached token, refreshing first when none is cached or the
// cached one expires within RefreshSkew.
//
// Concurrent callers share one refresh. The refresh is detached from any
// single caller's cancellation and bounded by DefaultTimeout; each caller
// stops waiting when its own ctx is done.
func (m *TokenManager) Token(ctx context.Context) (string, error) {
	if token, ok := m.cached(); ok {
		return token, nil
	}

	ch := m.refreshGroup.DoChan("token", func() (any, error) {
		// Another caller may have finished a refresh while we queued.
		if token, ok := m.cached(); ok {
			return token, nil
		}

		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), DefaultTimeout)
		defer cancel()
		return m.Refresh(refreshCtx)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		if res.Shared {
			m.logger.Debug("token refresh shared with concurrent caller")
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", newError(KindAuth, "gave up waiting for token refresh", ctx.Err())
	}
}

// cached returns the current token when it is still fresh.
func (m *TokenManager) cached() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.token == "" {
		return "", false
	}
	if !m.now().Before(m.expiresAt.Add(-RefreshSkew)) {
		return "", false
	}
	return m.token, true
}

// Refresh performs the client-credentials exchange unconditionally and
// replaces the cached token on success. On failure the cache is untouched.
func (m *TokenManager) Refresh(ctx context.Context) (string, error) {
	if !m.creds.complete() {
		m.logger.Warn("token refresh skipped: missing configuration", "credentials", m.creds)
		return "", newError(KindConfig, "API endpoint, client id or client secret not configured", nil)
	}

	tokenResp, err := m.requestToken(ctx)
	if err != nil {
		m.logger.Warn("token refresh failed", "error", err)
		return "", err
	}

	m.mu.Lock()
	m.token = tokenResp.AccessToken
	m.expiresAt = m.now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)
	expiresAt := m.expiresAt
	m.mu.Unlock()

	m.logger.Debug("token refreshed",
		"token", slogx.Truncate(tokenResp.AccessToken, 8),
		"expires_in", tokenResp.ExpiresIn,
		"expires_at", expiresAt,
	)

	return tokenResp.AccessToken, nil
}

// Invalidate drops the cached token if it is still token. An empty argument
// drops whatever is cached.
func (m *TokenManager) Invalidate(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if token != "" && m.token != token {
		return
	}
	m.token = ""
	m.expiresAt = time.Time{}
}

// ExpiresAt returns the expiry of the cached token, or the zero time.
func (m *TokenManager) ExpiresAt() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.expiresAt
}

func (m *TokenManager) requestToken(ctx context.Context) (*TokenResponse, error) {
	data := url.Values{
		"client_id":     {m.creds.ClientID},
		"client_secret": {m.creds.ClientSecret},
		"grant_type":    {"client_credentials"},
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		joinURL(m.creds.BaseURL, TokenPath),
		strings.NewReader(data.Encode()),
	)
	if err != nil {
		return nil, newError(KindAuth, "failed to create token request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, newError(KindAuth, "failed to send token request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &Error{
			Kind:       KindAuth,
			Message:    fmt.Sprintf("token request failed with status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
			Body:       string(bodyBytes),
		}
	}

	var tokenResp TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return nil, newError(KindAuth, "failed to decode token response", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, newError(KindAuth, "no access token in response", nil)
	}

	return &tokenResp, nil
}

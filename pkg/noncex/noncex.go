// Package noncex issues and verifies short-lived, action-bound nonces for
// the browser-facing relay. A nonce is an HS256 JWT whose audience is the
// action it protects; the signing key is derived from a configured secret.
package noncex

import (
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/mgu/pkg/cryptox"
	"github.com/aussiebroadwan/mgu/pkg/idx"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// DefaultTTL matches the lifetime of a WordPress nonce tick pair.
	DefaultTTL = 12 * time.Hour

	// Issuer is the iss claim stamped on every nonce.
	Issuer = "mgu-relay"

	keyInfo = "mgu-relay/nonce/v1"
)

var (
	ErrInvalid = errors.New("noncex: invalid nonce")
	ErrMissing = errors.New("noncex: missing nonce")
)

// Nonce is an issued token and the instant it stops verifying.
type Nonce struct {
	Value     string    `json:"nonce"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Claims carried by a nonce.
type Claims struct {
	jwt.RegisteredClaims
}

// Manager issues and verifies nonces with one derived key.
type Manager struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// New derives the signing key from secret and returns a Manager issuing
// nonces valid for ttl. A non-positive ttl selects DefaultTTL.
func New(secret []byte, ttl time.Duration, opts ...Option) (*Manager, error) {
	key, err := cryptox.DeriveKey(secret, keyInfo, cryptox.KeySize256)
	if err != nil {
		return nil, fmt.Errorf("noncex: derive key: %w", err)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	m := &Manager{key: key, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// TTL returns the lifetime of issued nonces.
func (m *Manager) TTL() time.Duration { return m.ttl }

// Issue creates a nonce bound to action.
func (m *Manager) Issue(action string) (Nonce, error) {
	if action == "" {
		return Nonce{}, errors.New("noncex: empty action")
	}

	now := m.now().UTC().Truncate(time.Second)
	exp := now.Add(m.ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Audience:  jwt.ClaimStrings{action},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        idx.NewAt(now).String(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return Nonce{}, fmt.Errorf("noncex: sign: %w", err)
	}
	return Nonce{Value: signed, ExpiresAt: exp}, nil
}

// Verify checks that value was issued by this Manager for action and has
// not expired. Every failure wraps ErrInvalid; the underlying jwt error
// is kept so callers can tell expiry apart with jwt.ErrTokenExpired.
func (m *Manager) Verify(value, action string) (*Claims, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, ErrMissing)
	}

	token, err := jwt.ParseWithClaims(value, &Claims{}, func(*jwt.Token) (any, error) {
		return m.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithAudience(action),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalid
	}
	if _, err := idx.Parse(claims.ID); err != nil {
		return nil, fmt.Errorf("%w: bad jti", ErrInvalid)
	}
	return claims, nil
}

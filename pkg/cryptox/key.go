package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Key size constants in bytes.
const (
	// KeySize256 is the HMAC-SHA256 key length used for relay nonces.
	KeySize256 = 32
)

// GenerateSecret creates a cryptographically secure random secret of the
// given byte length, base64url-encoded without padding.
func GenerateSecret(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("secret size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random secret: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// MustGenerateSecret is like GenerateSecret but panics on error.
// Use this only during initialization.
func MustGenerateSecret(size int) string {
	s, err := GenerateSecret(size)
	if err != nil {
		panic(fmt.Sprintf("cryptox: failed to generate secret: %v", err))
	}
	return s
}

// DeriveKey expands secret into a size-byte key bound to info using
// HKDF-SHA256. The same secret with a different info yields an
// unrelated key, so one configured secret can serve several purposes.
func DeriveKey(secret []byte, info string, size int) ([]byte, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("cryptox: empty secret")
	}
	if size <= 0 {
		return nil, fmt.Errorf("key size must be positive, got %d", size)
	}

	key := make([]byte, size)
	r := hkdf.New(sha256.New, secret, nil, []byte(info))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}

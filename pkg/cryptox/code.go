package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// Code size constants (in bytes before encoding).
const (
	// CodeSize128 provides 128 bits of entropy (22 chars base64url).
	// Used for room invite codes, which are shared between participants.
	CodeSize128 = 16
	// CodeSize256 provides 256 bits of entropy (43 chars base64url).
	// Used for per-user authentication codes (bearer secrets).
	CodeSize256 = 32
)

// GenerateCode creates a cryptographically secure random opaque code of
// the specified byte length, returned as a base64url string (URL-safe, no
// padding). These codes stand in for session tokens: a participant is
// whoever presents the code.
func GenerateCode(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("code size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random code: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// MustGenerateCode is like GenerateCode but panics on error. Use this only
// during initialization or in tests where failure is unrecoverable.
func MustGenerateCode(size int) string {
	code, err := GenerateCode(size)
	if err != nil {
		panic(fmt.Sprintf("cryptox: failed to generate code: %v", err))
	}
	return code
}

// FingerprintCode returns a deterministic SHA-256 fingerprint of a code,
// base64url-encoded. Useful for logging a stable reference to a secret
// without exposing the secret itself.
func FingerprintCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

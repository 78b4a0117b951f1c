package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// ByteLength is the amount of randomness in a response token (256 bits)
const ByteLength = 32

// Generator produces a fresh, unguessable token on every call
type Generator func() (string, error)

// Generate returns a URL-safe response token built from ByteLength random bytes
func Generate() (string, error) {
	return New(ByteLength)
}

// New returns n random bytes encoded as unpadded URL-safe base64
func New(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("token length must be positive, got %d", n)
	}

	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

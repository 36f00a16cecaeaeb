package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// sessionIDBytes is the entropy of a browser session id.
const sessionIDBytes = 32

// GenerateSessionID returns a URL-safe random session id drawn from crypto/rand.
func GenerateSessionID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

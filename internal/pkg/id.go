package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateGameID returns a short URL-safe random identifier for a new game.
func GenerateGameID() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate game id: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

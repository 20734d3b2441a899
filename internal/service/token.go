package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// generateResetToken draws length cryptographically secure random bytes and
// returns them hex-encoded. The result is the raw reset capability handed to
// the user; it must never be persisted or logged.
func generateResetToken(length int) (string, error) {
	raw := make([]byte, length)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("error generating reset token: %w", err)
	}

	return hex.EncodeToString(raw), nil
}

// hashResetToken computes the hex-encoded SHA-256 digest of a raw reset
// token. The hash is deliberately unsalted: it must be re-derivable from the
// raw token alone so redemption can look the record up by hash, and the
// token already carries enough entropy to make precomputation useless.
func hashResetToken(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return hex.EncodeToString(sum[:])
}

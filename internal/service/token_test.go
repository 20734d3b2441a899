package service

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResetToken_LengthAndEncoding(t *testing.T) {
	token, err := generateResetToken(32)

	require.NoError(t, err)
	assert.Len(t, token, 64, "32 random bytes hex-encode to 64 characters")

	_, err = hex.DecodeString(token)
	assert.NoError(t, err, "token must be valid hex")
}

func TestGenerateResetToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := generateResetToken(32)
		require.NoError(t, err)
		require.False(t, seen[token], "generated a duplicate token")
		seen[token] = true
	}
}

func TestHashResetToken_Deterministic(t *testing.T) {
	const raw = "0f1e2d3c4b5a"

	first := hashResetToken(raw)
	second := hashResetToken(raw)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64, "sha256 hex digest is 64 characters")
	assert.NotEqual(t, raw, first)
}

func TestHashResetToken_DistinctInputs(t *testing.T) {
	assert.NotEqual(t, hashResetToken("token-a"), hashResetToken("token-b"))
}

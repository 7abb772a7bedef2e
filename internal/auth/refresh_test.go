package auth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRefreshTokenShape(t *testing.T) {
	token, err := NewRefreshToken()
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

func TestNewRefreshTokenIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := NewRefreshToken()
		require.NoError(t, err)
		assert.False(t, seen[token], "duplicate refresh token generated")
		seen[token] = true
	}
}

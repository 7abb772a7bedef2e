package auth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHasherRequiresSalt(t *testing.T) {
	_, err := NewHasher("")
	require.Error(t, err)
}

func TestHashIsDeterministic(t *testing.T) {
	h, err := NewHasher("test-salt")
	require.NoError(t, err)

	first := h.Hash("password123")
	second := h.Hash("password123")
	assert.Equal(t, first, second)

	raw, err := base64.StdEncoding.DecodeString(first)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

func TestHashDependsOnSalt(t *testing.T) {
	a, err := NewHasher("salt-a")
	require.NoError(t, err)
	b, err := NewHasher("salt-b")
	require.NoError(t, err)

	assert.NotEqual(t, a.Hash("password123"), b.Hash("password123"))
}

func TestVerify(t *testing.T) {
	h, err := NewHasher("test-salt")
	require.NoError(t, err)
	stored := h.Hash("password123")

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "matching password", password: "password123", want: true},
		{name: "wrong password", password: "password1234", want: false},
		{name: "empty password", password: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Verify(tt.password, stored))
		})
	}
}

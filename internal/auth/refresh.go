package auth

import (
	"crypto/rand"
	"encoding/base64"
)

const refreshTokenBytes = 32

// NewRefreshToken returns 256 bits of cryptographically random data,
// base64-encoded. The value is opaque; all meaning lives in the stored row.
func NewRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

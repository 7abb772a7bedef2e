package auth

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 10000
	pbkdf2KeyLength  = 32
)

// Hasher derives and verifies password hashes using PBKDF2-HMAC-SHA512.
//
// The salt is a single process-wide value shared by every account. Switching
// to per-account salts would invalidate every stored hash, so the derivation
// parameters and salt handling must stay as-is.
type Hasher struct {
	salt []byte
}

// NewHasher builds a Hasher from the configured salt. An empty salt is a
// configuration error, not something to surface per request.
func NewHasher(salt string) (*Hasher, error) {
	if salt == "" {
		return nil, errors.New("auth: password salt is required")
	}
	return &Hasher{salt: []byte(salt)}, nil
}

// Hash returns the base64-encoded derivation of password.
func (h *Hasher) Hash(password string) string {
	key := pbkdf2.Key([]byte(password), h.salt, pbkdf2Iterations, pbkdf2KeyLength, sha512.New)
	return base64.StdEncoding.EncodeToString(key)
}

// Verify reports whether password derives to the stored hash. It never
// fails for a mismatch, it just returns false.
func (h *Hasher) Verify(password, stored string) bool {
	derived := h.Hash(password)
	return subtle.ConstantTimeCompare([]byte(derived), []byte(stored)) == 1
}

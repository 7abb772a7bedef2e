package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/SimonaRa20/BudgetManagementSystem/internal/models"
)

// DefaultAccessTokenTTL keeps access tokens short-lived; issued tokens are
// never revoked before expiry, only refresh tokens are.
const DefaultAccessTokenTTL = 2 * time.Hour

// Claims carried by an access token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer mints and verifies HS256 access tokens. It is a pure function of
// account, clock, and key; it touches no storage.
type Issuer struct {
	key      []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// IssuerOption configures an Issuer.
type IssuerOption func(*Issuer)

// WithNow overrides the clock, primarily for tests.
func WithNow(now func() time.Time) IssuerOption {
	return func(i *Issuer) {
		i.now = now
	}
}

// NewIssuer validates the signing configuration up front so a missing key is
// a startup error rather than a per-request one.
func NewIssuer(key, issuer, audience string, ttl time.Duration, opts ...IssuerOption) (*Issuer, error) {
	if key == "" {
		return nil, errors.New("auth: signing key is required")
	}
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}

	i := &Issuer{
		key:      []byte(key),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// AccessToken signs a token carrying the user's identity and role, expiring
// a fixed duration from now.
func (i *Issuer) AccessToken(userID uuid.UUID, role models.Role) (string, error) {
	now := i.now()
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
}

// Parse validates a presented token against the signing key, issuer, and
// audience, and returns its claims.
func (i *Issuer) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("auth: unexpected signing method")
		}
		return i.key, nil
	},
		jwt.WithIssuer(i.issuer),
		jwt.WithAudience(i.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/SimonaRa20/BudgetManagementSystem/internal/models"
)

type ctxKey int

const identityKey ctxKey = iota

// Identity is the authenticated caller extracted from a bearer token. The
// subject is kept as the raw claim string; handlers that need the account id
// parse it and decide how to fail.
type Identity struct {
	Subject string
	Role    models.Role
}

// UserID parses the subject claim into an account identifier.
func (id Identity) UserID() (uuid.UUID, error) {
	if id.Subject == "" {
		return uuid.Nil, errors.New("missing identity claim")
	}
	return uuid.Parse(id.Subject)
}

// IdentityFrom returns the caller identity stored by requireAuth.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// requireAuth validates the Authorization bearer token and stashes the
// caller identity in the request context.
func (a *API) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			respondError(w, http.StatusUnauthorized, errors.New("bearer token required"))
			return
		}

		claims, err := a.issuer.Parse(strings.TrimSpace(raw))
		if err != nil {
			respondError(w, http.StatusUnauthorized, errors.New("invalid or expired token"))
			return
		}

		id := Identity{Subject: claims.Subject, Role: models.Role(claims.Role)}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey, id)))
	})
}

// requireRole gates a route on an exact role match.
func (a *API) requireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFrom(r.Context())
			if !ok || id.Role != role {
				respondError(w, http.StatusForbidden, errors.New("insufficient role"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

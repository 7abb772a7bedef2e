package api

import (
	"errors"
	"time"

	"github.com/SimonaRa20/BudgetManagementSystem/internal/auth"
)

const (
	defaultRefreshTokenTTL = 24 * time.Hour

	userRegisteredTopic = "budget.users.registered"
	userDeletedTopic    = "budget.users.deleted"
	sessionOpenedTopic  = "budget.sessions.opened"
	sessionClosedTopic  = "budget.sessions.closed"
	incomeCreatedTopic  = "budget.incomes.created"
	expenseCreatedTopic = "budget.expenses.created"
)

// Config controls runtime behaviour for the API handlers.
type Config struct {
	RefreshTokenTTL time.Duration
	AllowedOrigins  []string
}

// API wires the store, token issuer, and password hasher behind the HTTP
// handlers.
type API struct {
	store  *Store
	issuer *auth.Issuer
	hasher *auth.Hasher
	config Config
	now    func() time.Time
}

// New initialises the API layer with sane defaults applied to the provided
// configuration.
func New(store *Store, issuer *auth.Issuer, hasher *auth.Hasher, cfg Config) (*API, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	if store.ORM == nil {
		return nil, errors.New("store ORM is required")
	}
	if issuer == nil {
		return nil, errors.New("token issuer is required")
	}
	if hasher == nil {
		return nil, errors.New("password hasher is required")
	}

	if cfg.RefreshTokenTTL <= 0 {
		cfg.RefreshTokenTTL = defaultRefreshTokenTTL
	}

	return &API{
		store:  store,
		issuer: issuer,
		hasher: hasher,
		config: cfg,
		now:    time.Now,
	}, nil
}

func (a *API) publishJSON(subject string, payload map[string]any) {
	if a.store.Bus == nil || subject == "" {
		return
	}
	a.store.Bus.Publish(subject, payload)
}

package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "budgetd_login_attempts_total",
		Help: "Login attempts by outcome.",
	}, []string{"result"})

	registrations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "budgetd_registrations_total",
		Help: "Accounts created through the register endpoint.",
	})

	tokenRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "budgetd_token_refreshes_total",
		Help: "Access token refresh attempts by outcome.",
	}, []string{"result"})
)

const (
	resultOK       = "ok"
	resultRejected = "rejected"
)

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/SimonaRa20/BudgetManagementSystem/internal/models"
	"github.com/SimonaRa20/BudgetManagementSystem/pkg/db"
)

// Routes constructs the chi router containing all API endpoints.
func (a *API) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	allowed := a.config.AllowedOrigins
	if len(allowed) == 0 {
		allowed = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowed,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           int((10 * time.Minute).Seconds()),
	}))

	r.Use(httprate.Limit(100, time.Minute))
	r.Use(func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, "budgetd")
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if a.store.DB != nil {
			if err := db.Ping(r.Context(), a.store.DB); err != nil {
				respondError(w, http.StatusServiceUnavailable, err)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Route casing follows the client contract.
	r.Route("/api", func(r chi.Router) {
		r.Route("/Auth", func(r chi.Router) {
			r.Post("/Login", a.handleLogin)
			r.Post("/Register", a.handleRegister)
			r.Post("/RefreshToken", a.handleRefreshToken)
			r.With(a.requireAuth).Post("/Logout", a.handleLogout)
		})

		r.Route("/Users", func(r chi.Router) {
			r.Use(a.requireAuth)
			r.Get("/", a.handleListUsers)
			r.With(a.requireRole(models.RoleAdmin)).Delete("/", a.handleDeleteUser)
		})

		r.Route("/Families", func(r chi.Router) {
			r.Use(a.requireAuth)
			r.Get("/", a.handleListFamilies)
			r.Post("/", a.handleCreateFamily)

			r.Route("/{familyID}", func(r chi.Router) {
				r.Get("/", a.handleGetFamily)
				r.Put("/", a.handleUpdateFamily)
				r.Get("/Budget", a.handleFamilyBudget)

				r.Route("/Members", func(r chi.Router) {
					r.Get("/", a.handleListMembers)
					r.Post("/", a.handleAddMember)
					r.Get("/NotInFamily", a.handleListUsersNotInFamily)

					r.Route("/{memberID}", func(r chi.Router) {
						r.Get("/", a.handleGetMember)
						r.Put("/", a.handleUpdateMemberType)
						r.Delete("/", a.handleRemoveMember)

						r.Route("/Incomes", func(r chi.Router) {
							r.Get("/", a.handleListIncomes)
							r.Post("/", a.handleCreateIncome)
							r.Get("/{incomeID}", a.handleGetIncome)
							r.Put("/{incomeID}", a.handleUpdateIncome)
							r.Delete("/{incomeID}", a.handleDeleteIncome)
						})

						r.Route("/Expenses", func(r chi.Router) {
							r.Get("/", a.handleListExpenses)
							r.Post("/", a.handleCreateExpense)
							r.Get("/{expenseID}", a.handleGetExpense)
							r.Put("/{expenseID}", a.handleUpdateExpense)
							r.Delete("/{expenseID}", a.handleDeleteExpense)
						})
					})
				})
			})
		})
	})

	return r
}

// internal/app/features/analytics/routes.go
package analytics

import (
	"github.com/dalemusser/pulseboard/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the router for the analytics API. Everything is behind
// the session gate; there are no public analytics endpoints.
func Routes(h *Handler, sm *auth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		// Full refresh: every dashboard section in one round trip.
		pr.Get("/dashboard", h.ServeDashboard)

		// Individual sections.
		pr.Get("/summary", h.ServeSummary)
		pr.Get("/users", h.ServeUsers)
		pr.Get("/users/active", h.ServeActiveUsers)
		pr.Get("/users/paid", h.ServePaidUsers)
		pr.Get("/regions", h.ServeRegions)
		pr.Get("/activity", h.ServeActivity)
		pr.Get("/transactions", h.ServeTransactions)
	})

	return r
}

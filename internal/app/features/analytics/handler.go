// internal/app/features/analytics/handler.go
package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/dalemusser/pulseboard/internal/app/store/docstore"
	"github.com/dalemusser/pulseboard/internal/app/store/queries/dashqueries"
	"github.com/dalemusser/pulseboard/internal/app/system/paging"
	"github.com/dalemusser/pulseboard/internal/app/system/timeouts"
	"github.com/dalemusser/pulseboard/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// Handler serves the analytics view-models as JSON.
//
// Every endpoint is a total function over the store: a failed read is
// logged and answered with the deterministic fallback for that section,
// never with an error status.
type Handler struct {
	Store docstore.Store
	Cfg   Config
	Log   *zap.Logger

	// Now is the clock used for active-window and relative-date math.
	// Tests override it.
	Now func() time.Time

	seq atomic.Uint64
}

func NewHandler(store docstore.Store, cfg Config, logger *zap.Logger) *Handler {
	return &Handler{
		Store: store,
		Cfg:   cfg,
		Log:   logger,
		Now:   time.Now,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Section builders: each returns a view-model, live or fallback.              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) summarySection(ctx context.Context) summaryVM {
	sum, err := dashqueries.Summary(ctx, h.Store, h.Cfg.UsersCollection, h.Cfg.PaidCollection, h.Cfg.InflationFactor, h.Now())
	if err != nil {
		h.Log.Warn("summary read failed", zap.Error(err))
		return summaryVM{AnalyticsSummary: fallbackSummary(), Source: SourceFallback}
	}
	return summaryVM{AnalyticsSummary: sum, Source: SourceLive}
}

func (h *Handler) activeUsersSection(ctx context.Context) activeUsersVM {
	users, err := dashqueries.DailyActiveUsers(ctx, h.Store, h.Cfg.UsersCollection, h.Now())
	if err != nil {
		h.Log.Warn("active users read failed", zap.Error(err))
		return activeUsersVM{Users: []models.DashboardUser{}, Sampled: true, Source: SourceFallback}
	}
	if users == nil {
		users = []models.DashboardUser{}
	}
	return activeUsersVM{Users: users, Sampled: true, Source: SourceLive}
}

func (h *Handler) regionsSection(ctx context.Context) regionsVM {
	regions, err := dashqueries.RegionalDistribution(ctx, h.Store, h.Cfg.UsersCollection)
	if err != nil {
		h.Log.Warn("regional distribution read failed", zap.Error(err))
		return regionsVM{Regions: fallbackRegions(), Source: SourceFallback}
	}
	if len(regions) == 0 {
		return regionsVM{Regions: fallbackRegions(), Source: SourceFallback}
	}
	return regionsVM{Regions: regions, Source: SourceLive}
}

func (h *Handler) activitySection(ctx context.Context) activityVM {
	items, err := dashqueries.ActivityFeed(ctx, h.Store, h.Cfg.EventsCollection, h.Now())
	if err != nil {
		h.Log.Warn("activity feed read failed", zap.Error(err))
		return activityVM{Items: fallbackActivity(h.Now()), Source: SourceFallback}
	}
	if len(items) == 0 {
		return activityVM{Items: fallbackActivity(h.Now()), Source: SourceFallback}
	}
	return activityVM{Items: items, Source: SourceLive}
}

func (h *Handler) transactionsSection(ctx context.Context) transactionsVM {
	txs, err := dashqueries.RecentTransactions(ctx, h.Store, h.Cfg.TransactionsCollection, h.Now())
	if err != nil {
		h.Log.Warn("transactions read failed", zap.Error(err))
		return transactionsVM{Transactions: fallbackTransactions(h.Now()), Source: SourceFallback}
	}
	if len(txs) == 0 {
		return transactionsVM{Transactions: fallbackTransactions(h.Now()), Source: SourceFallback}
	}
	return transactionsVM{Transactions: txs, Source: SourceLive}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Endpoints                                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeSummary handles GET /api/analytics/summary.
func (h *Handler) ServeSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	respondJSON(w, h.summarySection(ctx))
}

// ServeUsers handles GET /api/analytics/users?page=N.
func (h *Handler) ServeUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	page := parsePage(query.Get(r, "page"))

	users, err := dashqueries.AllUsers(ctx, h.Store, h.Cfg.UsersCollection)
	source := SourceLive
	if err != nil {
		h.Log.Warn("user list read failed", zap.Error(err))
		users = nil
		source = SourceFallback
	}

	rows := paging.Slice(users, page, paging.PageSize)
	if rows == nil {
		rows = []models.DashboardUser{}
	}
	rng := paging.ComputeRange(len(users), page, paging.PageSize)
	respondJSON(w, usersVM{
		Users:      rows,
		Page:       page,
		PageSize:   paging.PageSize,
		TotalPages: paging.TotalPages(len(users), paging.PageSize),
		Total:      rng.Total,
		Start:      rng.Start,
		End:        rng.End,
		Source:     source,
	})
}

// ServeActiveUsers handles GET /api/analytics/users/active.
func (h *Handler) ServeActiveUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	respondJSON(w, h.activeUsersSection(ctx))
}

// ServePaidUsers handles GET /api/analytics/users/paid.
func (h *Handler) ServePaidUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	users, err := dashqueries.PaidUsers(ctx, h.Store, h.Cfg.PaidCollection, h.Cfg.UsersCollection)
	if err != nil {
		h.Log.Warn("paid users read failed", zap.Error(err))
		respondJSON(w, paidUsersVM{Users: []models.DashboardUser{}, Source: SourceFallback})
		return
	}
	if users == nil {
		users = []models.DashboardUser{}
	}
	respondJSON(w, paidUsersVM{Users: users, Source: SourceLive})
}

// ServeRegions handles GET /api/analytics/regions.
func (h *Handler) ServeRegions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	respondJSON(w, h.regionsSection(ctx))
}

// ServeActivity handles GET /api/analytics/activity.
func (h *Handler) ServeActivity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	respondJSON(w, h.activitySection(ctx))
}

// ServeTransactions handles GET /api/analytics/transactions.
func (h *Handler) ServeTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	respondJSON(w, h.transactionsSection(ctx))
}

func parsePage(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func respondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

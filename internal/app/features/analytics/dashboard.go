// internal/app/features/analytics/dashboard.go
package analytics

import (
	"context"
	"net/http"

	"github.com/dalemusser/pulseboard/internal/app/system/timeouts"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ServeDashboard handles GET /api/analytics/dashboard.
//
// All sections are fetched concurrently. A section that fails falls back
// on its own; one bad collection never takes down the whole refresh, so
// the group members never return errors.
//
// Each response carries a fresh RefreshID and a monotonically increasing
// Seq. A client that fires a refresh before the previous one answered
// keeps whichever response has the highest Seq and drops the rest.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	vm := dashboardVM{
		RefreshID: uuid.NewString(),
		Seq:       h.seq.Add(1),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		vm.Summary = h.summarySection(gctx)
		return nil
	})
	g.Go(func() error {
		vm.ActiveUsers = h.activeUsersSection(gctx)
		return nil
	})
	g.Go(func() error {
		vm.Regions = h.regionsSection(gctx)
		return nil
	})
	g.Go(func() error {
		vm.Activity = h.activitySection(gctx)
		return nil
	})
	g.Go(func() error {
		vm.Transactions = h.transactionsSection(gctx)
		return nil
	})
	_ = g.Wait()

	respondJSON(w, vm)
}

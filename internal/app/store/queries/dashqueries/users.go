// internal/app/store/queries/dashqueries/users.go
package dashqueries

import (
	"context"
	"time"

	"github.com/dalemusser/pulseboard/internal/app/store/docstore"
	"github.com/dalemusser/pulseboard/internal/domain/models"
)

// Display defaults for user rows with missing fields.
const (
	NoEmail       = "No email"
	AnonymousUser = "Anonymous User"
)

// AllUsers returns every user shaped for listing, ordered by creation time
// descending (store-side; users without a creation time sort last).
func AllUsers(ctx context.Context, store docstore.Store, usersCol string) ([]models.DashboardUser, error) {
	rows, err := store.Query(ctx, usersCol, docstore.Query{
		OrderBy:    "createdAt",
		Descending: true,
	})
	if err != nil {
		return nil, err
	}

	out := make([]models.DashboardUser, 0, len(rows))
	for _, rec := range rows {
		out = append(out, shapeUser(rec))
	}
	return out, nil
}

// DailyActiveUsers returns the users whose last login falls within the
// trailing 24-hour window ending at now (lower bound inclusive). The result
// is the raw set: it is never inflated, and it may be a sampled subset of
// what the summary count implies.
func DailyActiveUsers(ctx context.Context, store docstore.Store, usersCol string, now time.Time) ([]models.DashboardUser, error) {
	rows, err := store.ListAll(ctx, usersCol)
	if err != nil {
		return nil, err
	}

	cutoff := now.Add(-ActiveWindow)
	var out []models.DashboardUser
	for _, rec := range rows {
		last, ok := rec.Time("lastLogin", "last_login")
		if !ok || last.Before(cutoff) {
			continue
		}
		out = append(out, shapeUser(rec))
	}
	return out, nil
}

// shapeUser maps a raw user record to a display row, filling defaults for
// missing fields.
func shapeUser(rec docstore.Record) models.DashboardUser {
	u := models.DashboardUser{
		ID:    rec.ID,
		Email: rec.StringOr(NoEmail, "email"),
		Name:  rec.StringOr(AnonymousUser, "name", "displayName"),
	}
	if last, ok := rec.Time("lastLogin", "last_login"); ok {
		u.LastLogin = &last
	}
	return u
}

// Package dashqueries provides the read-only queries that shape raw
// document records into dashboard view-models.
//
// Every function returns an honest (value, error) pair; substituting
// fallback values on error is the caller's policy, not this package's.
package dashqueries

import (
	"context"
	"time"

	"github.com/dalemusser/pulseboard/internal/app/store/docstore"
	"github.com/dalemusser/pulseboard/internal/domain/models"
)

// Growth percentages shown on the summary cards. These are fixed
// placeholders; there is no historical data to compute real growth from.
const (
	UsersGrowth       = 12
	DailyActiveGrowth = 8
	PaidUsersGrowth   = 15
)

// ActiveWindow is the trailing window within which a login counts as
// "daily active".
const ActiveWindow = 24 * time.Hour

// Summary computes the headline counts from full snapshots of the users and
// paid-link collections. The displayed daily-active value is the raw active
// count multiplied by inflation.
//
// Failure is all-or-nothing: if either read fails, no partial summary is
// returned.
func Summary(ctx context.Context, store docstore.Store, usersCol, paidCol string, inflation int, now time.Time) (models.AnalyticsSummary, error) {
	users, err := store.ListAll(ctx, usersCol)
	if err != nil {
		return models.AnalyticsSummary{}, err
	}

	active := 0
	cutoff := now.Add(-ActiveWindow)
	for _, rec := range users {
		if last, ok := rec.Time("lastLogin", "last_login"); ok && !last.Before(cutoff) {
			active++
		}
	}

	links, err := store.ListAll(ctx, paidCol)
	if err != nil {
		return models.AnalyticsSummary{}, err
	}

	return models.AnalyticsSummary{
		TotalUsers:        int64(len(users)),
		DailyActiveUsers:  int64(active * inflation),
		PaidUsers:         int64(len(links)),
		UsersGrowth:       UsersGrowth,
		DailyActiveGrowth: DailyActiveGrowth,
		PaidUsersGrowth:   PaidUsersGrowth,
	}, nil
}

// internal/app/store/queries/dashqueries/paidusers.go
package dashqueries

import (
	"context"

	"github.com/dalemusser/pulseboard/internal/app/store/docstore"
	"github.com/dalemusser/pulseboard/internal/domain/models"
	"golang.org/x/sync/errgroup"
)

// maxJoinLookups caps concurrent per-user lookups during the paid-user join.
const maxJoinLookups = 8

// PaidUsers resolves the paid-link collection to full user rows.
//
// Phase one lists the link records, preferring creation-time ordering and
// falling back to an unordered fetch if the ordered query fails. Phase two
// resolves each link to a user concurrently; a failed lookup never aborts
// the batch. That slot gets a synthesized placeholder instead, so the
// output length always equals the link count.
func PaidUsers(ctx context.Context, store docstore.Store, paidCol, usersCol string) ([]models.DashboardUser, error) {
	links, err := store.Query(ctx, paidCol, docstore.Query{
		OrderBy:    "createdAt",
		Descending: true,
	})
	if err != nil {
		links, err = store.ListAll(ctx, paidCol)
		if err != nil {
			return nil, err
		}
	}

	out := make([]models.DashboardUser, len(links))
	var g errgroup.Group
	g.SetLimit(maxJoinLookups)
	for i, link := range links {
		g.Go(func() error {
			out[i] = resolvePaidUser(ctx, store, usersCol, linkUserID(link))
			return nil
		})
	}
	_ = g.Wait()

	return out, nil
}

// linkUserID extracts the referenced user id from a link record, trying the
// known reference field names and finally the link's own document id.
func linkUserID(link docstore.Record) string {
	return link.StringOr(link.ID, "userId", "uid", "user_id", "id")
}

// resolvePaidUser looks a user up by document id, then by uid field, and
// synthesizes a minimal row when neither resolves.
func resolvePaidUser(ctx context.Context, store docstore.Store, usersCol, id string) models.DashboardUser {
	rec, found, err := store.GetByID(ctx, usersCol, id)
	if err == nil && found {
		return shapeJoinedUser(rec)
	}

	if err == nil {
		rows, qerr := store.Query(ctx, usersCol, docstore.Query{
			Filters: []docstore.Filter{{Field: "uid", Value: id}},
			Limit:   1,
		})
		if qerr == nil && len(rows) > 0 {
			return shapeJoinedUser(rows[0])
		}
	}

	return placeholderUser(id)
}

// shapeJoinedUser is like shapeUser but tries the wider field-name chains
// seen in joined user documents.
func shapeJoinedUser(rec docstore.Record) models.DashboardUser {
	u := models.DashboardUser{
		ID:    rec.ID,
		Email: rec.StringOr(NoEmail, "email", "emailAddress", "userEmail"),
		Name:  rec.StringOr(AnonymousUser, "name", "displayName", "userName", "fullName"),
	}
	if last, ok := rec.Time("lastLogin", "last_login"); ok {
		u.LastLogin = &last
	}
	return u
}

func placeholderUser(id string) models.DashboardUser {
	short := id
	if len(short) > 8 {
		short = short[:8]
	}
	return models.DashboardUser{
		ID:    id,
		Email: NoEmail,
		Name:  "User " + short,
	}
}

// internal/app/store/queries/dashqueries/activity.go
package dashqueries

import (
	"context"
	"time"

	"github.com/dalemusser/pulseboard/internal/app/store/docstore"
	"github.com/dalemusser/pulseboard/internal/domain/models"
	"github.com/microcosm-cc/bluemonday"
)

// activityFeedLimit is how many feed entries the dashboard shows.
const activityFeedLimit = 5

// messagePolicy strips all markup from activity messages. Feed records come
// straight from store collections and are rendered in the dashboard.
var messagePolicy = bluemonday.StrictPolicy()

// ActivityFeed returns the most recent records of the collection classified
// as activity entries. Records without a usable timestamp get now.
func ActivityFeed(ctx context.Context, store docstore.Store, collection string, now time.Time) ([]models.ActivityItem, error) {
	rows, err := store.Query(ctx, collection, docstore.Query{
		OrderBy:    "timestamp",
		Descending: true,
		Limit:      activityFeedLimit,
	})
	if err != nil {
		return nil, err
	}

	out := make([]models.ActivityItem, 0, len(rows))
	for _, rec := range rows {
		kind := classifyActivity(rec)
		ts, ok := rec.Time("timestamp", "createdAt")
		if !ok {
			ts = now
		}
		out = append(out, models.ActivityItem{
			Type:      kind,
			Message:   activityMessage(rec, kind),
			Timestamp: ts,
		})
	}
	return out, nil
}

// classifyActivity applies the fixed type precedence: user-like signals
// first, then payment-like (an amount field alone counts as payment), then
// report-like, else system.
func classifyActivity(rec docstore.Record) models.ActivityType {
	kind, _ := rec.String("type")
	action, _ := rec.String("action")
	event, _ := rec.String("event")

	switch {
	case kind == "user" || action == "register" || event == "signup":
		return models.ActivityUser
	case kind == "payment" || action == "payment" || rec.Has("amount"):
		return models.ActivityPayment
	case kind == "report" || action == "report":
		return models.ActivityReport
	default:
		return models.ActivitySystem
	}
}

func activityMessage(rec docstore.Record, kind models.ActivityType) string {
	if msg, ok := rec.String("message"); ok {
		return messagePolicy.Sanitize(msg)
	}
	return defaultActivityMessage(kind)
}

func defaultActivityMessage(kind models.ActivityType) string {
	switch kind {
	case models.ActivityUser:
		return "New user registered"
	case models.ActivityPayment:
		return "Payment processed"
	case models.ActivityReport:
		return "Report generated"
	default:
		return "System update"
	}
}

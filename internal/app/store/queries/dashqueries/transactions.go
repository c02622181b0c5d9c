// internal/app/store/queries/dashqueries/transactions.go
package dashqueries

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/dalemusser/pulseboard/internal/app/store/docstore"
	"github.com/dalemusser/pulseboard/internal/domain/models"
)

const (
	// transactionFetchLimit is how many records are read before shaping.
	transactionFetchLimit = 10

	// transactionShowLimit is how many shaped rows are returned.
	transactionShowLimit = 3
)

// Bounds for the synthetic amount assigned when a record carries none:
// [syntheticAmountMin, syntheticAmountMin+syntheticAmountSpan).
const (
	syntheticAmountMin  = 1000
	syntheticAmountSpan = 5000
)

// RecentTransactions shapes the most recent records of the collection into
// transaction rows. Display ids are generated from each record's rank in
// the fetched batch, not from a stored field.
func RecentTransactions(ctx context.Context, store docstore.Store, collection string, now time.Time) ([]models.Transaction, error) {
	rows, err := store.Query(ctx, collection, docstore.Query{
		OrderBy:    "timestamp",
		Descending: true,
		Limit:      transactionFetchLimit,
	})
	if err != nil {
		return nil, err
	}

	out := make([]models.Transaction, 0, len(rows))
	for i, rec := range rows {
		ts, ok := rec.Time("timestamp", "createdAt")
		if !ok {
			ts = now
		}

		amount := int64(0)
		if n, ok := rec.Number("amount", "revenue", "price"); ok {
			amount = int64(n)
		} else {
			amount = int64(rand.Intn(syntheticAmountSpan)) + syntheticAmountMin
		}

		out = append(out, models.Transaction{
			ID:        fmt.Sprintf("#TXN-%03d", i+1),
			Customer:  rec.StringOr(AnonymousUser, "customer", "user", "name"),
			Amount:    amount,
			Status:    normalizeStatus(rec),
			Date:      Relative(ts, now),
			Timestamp: ts,
		})
	}

	if len(out) > transactionShowLimit {
		out = out[:transactionShowLimit]
	}
	return out, nil
}

// normalizeStatus maps raw status strings onto the known set, defaulting to
// completed for anything unrecognized.
func normalizeStatus(rec docstore.Record) models.TransactionStatus {
	switch status, _ := rec.String("status"); status {
	case "completed", "success":
		return models.TxCompleted
	case "pending":
		return models.TxPending
	default:
		return models.TxCompleted
	}
}

// internal/app/features/analytics/fallback.go
//
// Deterministic fallback values served when a store read fails. Keeping
// them here, not in the query layer, keeps the queries honest about
// failure; every fallback response is tagged SourceFallback.
package analytics

import (
	"time"

	"github.com/dalemusser/pulseboard/internal/domain/models"
)

// fallbackSummary is the zero-filled summary used when the summary read
// fails. Growth placeholders are zeroed too: a failed read and an empty
// collection must be distinguishable.
func fallbackSummary() models.AnalyticsSummary {
	return models.AnalyticsSummary{}
}

func fallbackRegions() []models.Region {
	return []models.Region{
		{Country: "United States", Code: "US", Percentage: 42},
		{Country: "United Kingdom", Code: "UK", Percentage: 28},
		{Country: "Canada", Code: "CA", Percentage: 18},
		{Country: "Australia", Code: "AU", Percentage: 12},
	}
}

func fallbackActivity(now time.Time) []models.ActivityItem {
	return []models.ActivityItem{
		{Type: models.ActivityUser, Message: "New user registered", Timestamp: now},
		{Type: models.ActivityPayment, Message: "Payment processed", Timestamp: now},
		{Type: models.ActivityReport, Message: "Report generated", Timestamp: now},
		{Type: models.ActivitySystem, Message: "System update", Timestamp: now},
	}
}

func fallbackTransactions(now time.Time) []models.Transaction {
	return []models.Transaction{
		{ID: "#TXN-001", Customer: "John Doe", Amount: 2847, Status: models.TxCompleted, Date: "2 hours ago", Timestamp: now},
		{ID: "#TXN-002", Customer: "Jane Smith", Amount: 1249, Status: models.TxPending, Date: "4 hours ago", Timestamp: now},
		{ID: "#TXN-003", Customer: "Mike Johnson", Amount: 3156, Status: models.TxCompleted, Date: "6 hours ago", Timestamp: now},
	}
}

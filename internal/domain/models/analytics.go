// internal/domain/models/analytics.go
package models

import "time"

// AnalyticsSummary holds the headline counts shown on the dashboard cards.
//
// DailyActiveUsers is a display value: the raw 24-hour active count
// multiplied by a configured inflation factor. The raw count is never
// larger than TotalUsers; the displayed value may be.
type AnalyticsSummary struct {
	TotalUsers       int64 `json:"total_users"`
	DailyActiveUsers int64 `json:"daily_active_users"`
	PaidUsers        int64 `json:"paid_users"`

	// Growth percentages are fixed placeholders, not computed from
	// historical data.
	UsersGrowth       int `json:"users_growth"`
	DailyActiveGrowth int `json:"daily_active_growth"`
	PaidUsersGrowth   int `json:"paid_users_growth"`
}

// DashboardUser is the shaped user row for dashboard listings.
// Missing fields are filled with display defaults during shaping, so the
// struct is always fully populated.
type DashboardUser struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// Region is one bucket of the regional distribution.
type Region struct {
	Country    string `json:"country"`
	Code       string `json:"code"`
	Percentage int    `json:"percentage"`
}

// ActivityType classifies an activity feed entry.
type ActivityType string

const (
	ActivityUser    ActivityType = "user"
	ActivityPayment ActivityType = "payment"
	ActivityReport  ActivityType = "report"
	ActivitySystem  ActivityType = "system"
)

// ActivityItem is one entry in the recent-activity feed.
type ActivityItem struct {
	Type      ActivityType `json:"type"`
	Message   string       `json:"message"`
	Timestamp time.Time    `json:"timestamp"`
}

// TransactionStatus is the normalized status of a transaction row.
type TransactionStatus string

const (
	TxCompleted TransactionStatus = "completed"
	TxPending   TransactionStatus = "pending"
	TxFailed    TransactionStatus = "failed"
)

// Transaction is a shaped row for the recent-transactions table.
// ID is a generated display id (#TXN-001, ...), not a stored field.
type Transaction struct {
	ID        string            `json:"id"`
	Customer  string            `json:"customer"`
	Amount    int64             `json:"amount"`
	Status    TransactionStatus `json:"status"`
	Date      string            `json:"date"`
	Timestamp time.Time         `json:"timestamp"`
}

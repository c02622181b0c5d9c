// internal/app/features/analytics/types.go
package analytics

import "github.com/dalemusser/pulseboard/internal/domain/models"

// Section sources. Every response says where its data came from so the UI
// can disclose sample data instead of silently presenting it as real.
const (
	SourceLive     = "live"
	SourceFallback = "fallback"
)

// Config names the collections the dashboard reads and the display
// inflation applied to the daily-active count.
type Config struct {
	UsersCollection        string
	PaidCollection         string
	EventsCollection       string
	TransactionsCollection string
	InflationFactor        int
}

// summaryVM is the response for the summary cards.
type summaryVM struct {
	models.AnalyticsSummary
	Source string `json:"source"`
}

// usersVM is the paginated response for the all-users table. Start and
// End are the 1-based display range of the returned rows, zero when the
// page holds nothing.
type usersVM struct {
	Users      []models.DashboardUser `json:"users"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"page_size"`
	TotalPages int                    `json:"total_pages"`
	Total      int                    `json:"total"`
	Start      int                    `json:"start"`
	End        int                    `json:"end"`
	Source     string                 `json:"source"`
}

// activeUsersVM is the response for the daily-active list. Sampled is
// always true: the list is the raw matching set while the summary shows an
// inflated count, and the two are allowed to disagree.
type activeUsersVM struct {
	Users   []models.DashboardUser `json:"users"`
	Sampled bool                   `json:"sampled"`
	Source  string                 `json:"source"`
}

// paidUsersVM is the response for the paid-users table.
type paidUsersVM struct {
	Users  []models.DashboardUser `json:"users"`
	Source string                 `json:"source"`
}

// regionsVM is the response for the regional distribution.
type regionsVM struct {
	Regions []models.Region `json:"regions"`
	Source  string          `json:"source"`
}

// activityVM is the response for the recent-activity feed.
type activityVM struct {
	Items  []models.ActivityItem `json:"items"`
	Source string                `json:"source"`
}

// transactionsVM is the response for the recent-transactions table.
type transactionsVM struct {
	Transactions []models.Transaction `json:"transactions"`
	Source       string               `json:"source"`
}

// dashboardVM is the full-refresh response. RefreshID and Seq let a client
// with overlapping refreshes in flight discard stale responses; the server
// does not serialize them.
type dashboardVM struct {
	RefreshID string `json:"refresh_id"`
	Seq       uint64 `json:"seq"`

	Summary      summaryVM      `json:"summary"`
	ActiveUsers  activeUsersVM  `json:"active_users"`
	Regions      regionsVM      `json:"regions"`
	Activity     activityVM     `json:"activity"`
	Transactions transactionsVM `json:"transactions"`
}

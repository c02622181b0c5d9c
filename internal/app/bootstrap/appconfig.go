// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, CORS). AppConfig is everything specific to the dashboard:
// where the data lives, which collections to read, the shared sign-in
// credentials, and the display inflation for the daily-active count.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: pulseboard-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Dashboard sign-in credentials. One shared account, no user store.
	DashboardEmail        string // Email accepted at /login
	DashboardPasswordHash string // bcrypt hash of the shared password

	// Collections the dashboard reads. All reads are read-only.
	UsersCollection        string // User snapshot collection
	PaidCollection         string // Paid-membership link collection
	EventsCollection       string // Activity event collection
	TransactionsCollection string // Transaction collection

	// ActiveInflationFactor multiplies the raw daily-active count on the
	// summary cards. The active-user list stays uninflated.
	ActiveInflationFactor int
}

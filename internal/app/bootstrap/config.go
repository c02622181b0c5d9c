// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for Pulseboard.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: PULSEBOARD_MONGO_URI, PULSEBOARD_SESSION_NAME, etc.
//   - Command-line flags: --mongo_uri, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "pulseboard", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "pulseboard-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// Dashboard sign-in. Blank hash disables login entirely.
	{Name: "dashboard_email", Default: "admin@example.com", Desc: "Email accepted at /login"},
	{Name: "dashboard_password_hash", Default: "", Desc: "bcrypt hash of the shared dashboard password"},

	// Collections read by the dashboard.
	{Name: "users_collection", Default: "users", Desc: "User snapshot collection"},
	{Name: "paid_collection", Default: "test_users_12m", Desc: "Paid-membership link collection"},
	{Name: "events_collection", Default: "events", Desc: "Activity event collection"},
	{Name: "transactions_collection", Default: "transactions", Desc: "Transaction collection"},

	{Name: "active_inflation_factor", Default: 12, Desc: "Multiplier applied to the raw daily-active count on summary cards"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, PULSEBOARD_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "PULSEBOARD", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		DashboardEmail:        appValues.String("dashboard_email"),
		DashboardPasswordHash: appValues.String("dashboard_password_hash"),

		UsersCollection:        appValues.String("users_collection"),
		PaidCollection:         appValues.String("paid_collection"),
		EventsCollection:       appValues.String("events_collection"),
		TransactionsCollection: appValues.String("transactions_collection"),

		ActiveInflationFactor: appValues.Int("active_inflation_factor"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI is checked up front so a typo fails fast instead of
// surfacing as a connect timeout.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.ActiveInflationFactor < 1 {
		return fmt.Errorf("active_inflation_factor must be >= 1, got %d", appCfg.ActiveInflationFactor)
	}

	if appCfg.UsersCollection == "" || appCfg.PaidCollection == "" {
		return fmt.Errorf("users_collection and paid_collection must be set")
	}

	if appCfg.DashboardPasswordHash == "" {
		logger.Warn("dashboard_password_hash not set; login is disabled")
	}

	return nil
}

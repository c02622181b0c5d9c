// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// The dashboard has no caches to warm or templates to load; this hook
// only records the effective read configuration for operators.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("pulseboard starting",
		zap.String("users_collection", appCfg.UsersCollection),
		zap.String("paid_collection", appCfg.PaidCollection),
		zap.String("events_collection", appCfg.EventsCollection),
		zap.String("transactions_collection", appCfg.TransactionsCollection),
		zap.Int("active_inflation_factor", appCfg.ActiveInflationFactor))
	return nil
}

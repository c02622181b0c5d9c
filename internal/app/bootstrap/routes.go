// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	analyticsfeature "github.com/dalemusser/pulseboard/internal/app/features/analytics"
	healthfeature "github.com/dalemusser/pulseboard/internal/app/features/health"
	homefeature "github.com/dalemusser/pulseboard/internal/app/features/home"
	loginfeature "github.com/dalemusser/pulseboard/internal/app/features/login"
	logoutfeature "github.com/dalemusser/pulseboard/internal/app/features/logout"
	"github.com/dalemusser/pulseboard/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The router mounts the service root and
// health check publicly, login/logout for session management, and the
// analytics API behind the session gate.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr := auth.NewManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if signed in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Service root
	homeHandler := homefeature.NewHandler(Version, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(sessionMgr, appCfg.DashboardEmail, appCfg.DashboardPasswordHash, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Analytics API (session-gated)
	analyticsHandler := analyticsfeature.NewHandler(deps.Docs, analyticsfeature.Config{
		UsersCollection:        appCfg.UsersCollection,
		PaidCollection:         appCfg.PaidCollection,
		EventsCollection:       appCfg.EventsCollection,
		TransactionsCollection: appCfg.TransactionsCollection,
		InflationFactor:        appCfg.ActiveInflationFactor,
	}, logger)
	r.Mount("/api/analytics", analyticsfeature.Routes(analyticsHandler, sessionMgr))

	return r, nil
}

package main

import (
	"log"
	"net/http"

	"netbank/internal/domain/session"
	httphandlers "netbank/internal/interfaces/http"
	"netbank/internal/shared/config"
	"netbank/internal/shared/middleware"
	"netbank/internal/shared/telemetry"
	"netbank/internal/web"
)

// SetupRoutes configures all HTTP routes and returns the final handler with middleware.
func SetupRoutes(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	// Pages
	mux.HandleFunc("/{$}", httphandlers.Page(session.ViewHome, "index.html"))
	mux.HandleFunc("/login", httphandlers.Page(session.ViewLogin, "login.html"))
	mux.HandleFunc("/register", httphandlers.Page(session.ViewRegister, "register.html"))
	mux.HandleFunc("/account/summary", httphandlers.Page(session.ViewAccountSummary, "summary.html"))
	mux.HandleFunc("/account/transactions", httphandlers.Page("/account/transactions", "transactions.html"))
	mux.HandleFunc("/account/transfer", httphandlers.Page("/account/transfer", "transfer.html"))
	mux.HandleFunc("/account/create", httphandlers.Page("/account/create", "term-account.html"))
	mux.HandleFunc("/account/profile", httphandlers.Page("/account/profile", "profile.html"))
	mux.HandleFunc("/admin", httphandlers.Page(session.ViewAdminHome, "admin.html"))
	mux.HandleFunc("/admin/manage-users", httphandlers.Page("/admin/manage-users", "manage-users.html"))
	mux.HandleFunc("/admin/calculate-interest", httphandlers.Page("/admin/calculate-interest", "calculate-interest.html"))
	mux.HandleFunc("/admin/reports", httphandlers.Page("/admin/reports", "reports.html"))

	// Static assets
	mux.Handle("/static/", http.FileServerFS(web.FS))

	// Health check and metrics
	mux.HandleFunc("/health", httphandlers.HandleHealth)
	mux.Handle("/metrics", telemetry.Handler())

	// Auth
	mux.HandleFunc("/api/auth/login", deps.AuthHandler.HandleLogin)
	mux.HandleFunc("/api/auth/logout", deps.AuthHandler.HandleLogout)
	mux.HandleFunc("/api/auth/register", deps.AuthHandler.HandleRegister)

	// Customer
	mux.HandleFunc("/api/accounts", deps.AccountHandler.HandleListAccounts)
	mux.HandleFunc("/api/accounts/select", deps.AccountHandler.HandleSelectAccount)
	mux.HandleFunc("/api/accounts/term", deps.AccountHandler.HandleOpenTermAccount)
	mux.HandleFunc("/api/accounts/{id}/statement", deps.AccountHandler.HandleStatement)
	mux.HandleFunc("/api/transactions", deps.TransactionHandler.HandleExecute)
	mux.HandleFunc("/api/users/me", deps.UserHandler.HandleMe)
	mux.HandleFunc("/api/users/profile", deps.UserHandler.HandleUpdateProfile)

	// Admin
	mux.HandleFunc("/api/admin/stats", deps.AdminHandler.HandleStats)
	mux.HandleFunc("/api/admin/pending-customers", deps.AdminHandler.HandlePendingCustomers)
	mux.HandleFunc("/api/admin/customers", deps.AdminHandler.HandleCustomers)
	mux.HandleFunc("/api/admin/customers/{id}", deps.AdminHandler.HandleCustomerByID)
	mux.HandleFunc("/api/admin/customers/{id}/{action}", deps.AdminHandler.HandleApproval)
	mux.HandleFunc("/api/admin/accounts/{id}/interest", deps.AdminHandler.HandleInterest)
	mux.HandleFunc("/api/admin/transactions", deps.AdminHandler.HandleTransactionReport)

	// Apply global middleware. Resolve runs first so the access log can
	// name the caller's role.
	resolve := middleware.Resolve(deps.JWT, deps.SessionStore)
	handler := resolve(middleware.Logging(mux))

	// Apply security middleware when TLS is enabled
	if cfg.TLS.Enabled {
		handler = middleware.HSTS(middleware.SecureCookies(handler))
		log.Println("TLS security middleware enabled (HSTS + SecureCookies)")
	}

	return handler
}

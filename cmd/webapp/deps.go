package main

import (
	"netbank/internal/domain/session"
	"netbank/internal/infrastructure/corebank"
	httphandlers "netbank/internal/interfaces/http"
	"netbank/internal/shared/auth"
	"netbank/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	// Handlers
	AuthHandler        *httphandlers.AuthHandler
	AccountHandler     *httphandlers.AccountHandler
	TransactionHandler *httphandlers.TransactionHandler
	UserHandler        *httphandlers.UserHandler
	AdminHandler       *httphandlers.AdminHandler

	// Session plumbing
	JWT          *auth.JWT
	SessionStore *session.Store
}

// NewDependencies initializes all application dependencies.
func NewDependencies(cfg *config.Config) (*Dependencies, error) {
	client := corebank.NewClient(cfg.CoreBank.BaseURL, cfg.CoreBank.Timeout)

	vault, err := auth.NewVault(cfg.Vault.Key)
	if err != nil {
		return nil, err
	}

	jwt := auth.NewJWT(cfg.JWT.Secret)
	store := session.NewStore(vault)

	return &Dependencies{
		AuthHandler:        httphandlers.NewAuthHandler(client, store, jwt),
		AccountHandler:     httphandlers.NewAccountHandler(client, store),
		TransactionHandler: httphandlers.NewTransactionHandler(client, store),
		UserHandler:        httphandlers.NewUserHandler(client, store),
		AdminHandler:       httphandlers.NewAdminHandler(client, store),
		JWT:                jwt,
		SessionStore:       store,
	}, nil
}

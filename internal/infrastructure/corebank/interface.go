package corebank

import (
	"context"
)

// ClientInterface defines the methods required from the core-banking API client
type ClientInterface interface {
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	Register(ctx context.Context, params RegistrationParams) error
	ListAccounts(ctx context.Context, customerID int64) ([]Account, error)
	MiniStatement(ctx context.Context, accountID int64) ([]TransactionRecord, error)
	FullStatement(ctx context.Context, accountID int64) ([]TransactionRecord, error)
	Deposit(ctx context.Context, accountID int64, amount float64) (*TransactionResult, error)
	Withdraw(ctx context.Context, accountID int64, amount float64, creds Credentials) (*TransactionResult, error)
	Transfer(ctx context.Context, fromAccountID, toAccountID int64, amount float64, creds Credentials) (*TransactionResult, error)
	UpdateProfile(ctx context.Context, customerID int64, params ProfileParams) (*Customer, error)
	OpenTermAccount(ctx context.Context, customerID int64, params TermAccountParams) error

	// Admin surface
	GetStats(ctx context.Context) (*Stats, error)
	PendingCustomers(ctx context.Context) ([]Customer, error)
	ApproveCustomer(ctx context.Context, customerID int64) error
	DeclineCustomer(ctx context.Context, customerID int64) error
	ListCustomers(ctx context.Context) ([]Customer, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
	AccountInterest(ctx context.Context, accountID int64) (float64, error)
	FilterTransactions(ctx context.Context, filter TransactionFilter) ([]TransactionRecord, error)
}

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"netbank/internal/domain/account"
	"netbank/internal/domain/session"
	"netbank/internal/infrastructure/corebank"
	"netbank/internal/shared/auth"
	"netbank/internal/shared/middleware"
)

// MockClient is a mock implementation of corebank.ClientInterface
type MockClient struct {
	LoginFunc              func(ctx context.Context, email, password string) (*corebank.LoginResponse, error)
	RegisterFunc           func(ctx context.Context, params corebank.RegistrationParams) error
	ListAccountsFunc       func(ctx context.Context, customerID int64) ([]corebank.Account, error)
	MiniStatementFunc      func(ctx context.Context, accountID int64) ([]corebank.TransactionRecord, error)
	FullStatementFunc      func(ctx context.Context, accountID int64) ([]corebank.TransactionRecord, error)
	DepositFunc            func(ctx context.Context, accountID int64, amount float64) (*corebank.TransactionResult, error)
	WithdrawFunc           func(ctx context.Context, accountID int64, amount float64, creds corebank.Credentials) (*corebank.TransactionResult, error)
	TransferFunc           func(ctx context.Context, fromAccountID, toAccountID int64, amount float64, creds corebank.Credentials) (*corebank.TransactionResult, error)
	UpdateProfileFunc      func(ctx context.Context, customerID int64, params corebank.ProfileParams) (*corebank.Customer, error)
	OpenTermAccountFunc    func(ctx context.Context, customerID int64, params corebank.TermAccountParams) error
	GetStatsFunc           func(ctx context.Context) (*corebank.Stats, error)
	PendingCustomersFunc   func(ctx context.Context) ([]corebank.Customer, error)
	ApproveCustomerFunc    func(ctx context.Context, customerID int64) error
	DeclineCustomerFunc    func(ctx context.Context, customerID int64) error
	ListCustomersFunc      func(ctx context.Context) ([]corebank.Customer, error)
	DeleteCustomerFunc     func(ctx context.Context, customerID int64) error
	AccountInterestFunc    func(ctx context.Context, accountID int64) (float64, error)
	FilterTransactionsFunc func(ctx context.Context, filter corebank.TransactionFilter) ([]corebank.TransactionRecord, error)
}

var _ corebank.ClientInterface = (*MockClient)(nil)

func (m *MockClient) Login(ctx context.Context, email, password string) (*corebank.LoginResponse, error) {
	return m.LoginFunc(ctx, email, password)
}

func (m *MockClient) Register(ctx context.Context, params corebank.RegistrationParams) error {
	return m.RegisterFunc(ctx, params)
}

func (m *MockClient) ListAccounts(ctx context.Context, customerID int64) ([]corebank.Account, error) {
	if m.ListAccountsFunc != nil {
		return m.ListAccountsFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *MockClient) MiniStatement(ctx context.Context, accountID int64) ([]corebank.TransactionRecord, error) {
	return m.MiniStatementFunc(ctx, accountID)
}

func (m *MockClient) FullStatement(ctx context.Context, accountID int64) ([]corebank.TransactionRecord, error) {
	return m.FullStatementFunc(ctx, accountID)
}

func (m *MockClient) Deposit(ctx context.Context, accountID int64, amount float64) (*corebank.TransactionResult, error) {
	return m.DepositFunc(ctx, accountID, amount)
}

func (m *MockClient) Withdraw(ctx context.Context, accountID int64, amount float64, creds corebank.Credentials) (*corebank.TransactionResult, error) {
	return m.WithdrawFunc(ctx, accountID, amount, creds)
}

func (m *MockClient) Transfer(ctx context.Context, fromAccountID, toAccountID int64, amount float64, creds corebank.Credentials) (*corebank.TransactionResult, error) {
	return m.TransferFunc(ctx, fromAccountID, toAccountID, amount, creds)
}

func (m *MockClient) UpdateProfile(ctx context.Context, customerID int64, params corebank.ProfileParams) (*corebank.Customer, error) {
	return m.UpdateProfileFunc(ctx, customerID, params)
}

func (m *MockClient) OpenTermAccount(ctx context.Context, customerID int64, params corebank.TermAccountParams) error {
	return m.OpenTermAccountFunc(ctx, customerID, params)
}

func (m *MockClient) GetStats(ctx context.Context) (*corebank.Stats, error) {
	return m.GetStatsFunc(ctx)
}

func (m *MockClient) PendingCustomers(ctx context.Context) ([]corebank.Customer, error) {
	return m.PendingCustomersFunc(ctx)
}

func (m *MockClient) ApproveCustomer(ctx context.Context, customerID int64) error {
	return m.ApproveCustomerFunc(ctx, customerID)
}

func (m *MockClient) DeclineCustomer(ctx context.Context, customerID int64) error {
	return m.DeclineCustomerFunc(ctx, customerID)
}

func (m *MockClient) ListCustomers(ctx context.Context) ([]corebank.Customer, error) {
	return m.ListCustomersFunc(ctx)
}

func (m *MockClient) DeleteCustomer(ctx context.Context, customerID int64) error {
	return m.DeleteCustomerFunc(ctx, customerID)
}

func (m *MockClient) AccountInterest(ctx context.Context, accountID int64) (float64, error) {
	return m.AccountInterestFunc(ctx, accountID)
}

func (m *MockClient) FilterTransactions(ctx context.Context, filter corebank.TransactionFilter) ([]corebank.TransactionRecord, error) {
	return m.FilterTransactionsFunc(ctx, filter)
}

const testVaultKey = "01234567890123456789012345678901"

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	vault, err := auth.NewVault(testVaultKey)
	if err != nil {
		t.Fatalf("NewVault() failed: %v", err)
	}
	return session.NewStore(vault)
}

// newCustomerSession opens a primed customer session against the mock
// client and returns it alongside the store.
func newCustomerSession(t *testing.T, client *MockClient, store *session.Store) *session.Session {
	t.Helper()
	cache := account.NewCache(client, 42)
	if err := cache.Refresh(context.Background()); err != nil {
		t.Fatalf("cache Refresh() failed: %v", err)
	}
	sess, err := store.Create(session.Identity{
		Role: session.RoleCustomer,
		User: &corebank.Customer{CustomerID: 42, CustomerName: "Anna", EmailID: "anna@example.com"},
	}, "s3cret", cache)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	return sess
}

func newAdminSession(t *testing.T, store *session.Store) *session.Session {
	t.Helper()
	sess, err := store.Create(session.Identity{
		Role: session.RoleAdmin,
		User: &corebank.Customer{CustomerID: 1, CustomerName: "Root", EmailID: "admin@example.com"},
	}, "", nil)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	return sess
}

// withSession attaches a session to the request the way the middleware
// would.
func withSession(r *http.Request, sess *session.Session) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.SessionKey, sess)
	return r.WithContext(ctx)
}

func doRequest(handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

package transaction

import (
	"context"
	"errors"
	"testing"

	"netbank/internal/domain/account"
	"netbank/internal/infrastructure/corebank"
)

// MockAPI is a mock implementation of the API interface
type MockAPI struct {
	DepositFunc  func(ctx context.Context, accountID int64, amount float64) (*corebank.TransactionResult, error)
	WithdrawFunc func(ctx context.Context, accountID int64, amount float64, creds corebank.Credentials) (*corebank.TransactionResult, error)
	TransferFunc func(ctx context.Context, fromAccountID, toAccountID int64, amount float64, creds corebank.Credentials) (*corebank.TransactionResult, error)
	calls        int
}

func (m *MockAPI) Deposit(ctx context.Context, accountID int64, amount float64) (*corebank.TransactionResult, error) {
	m.calls++
	return m.DepositFunc(ctx, accountID, amount)
}

func (m *MockAPI) Withdraw(ctx context.Context, accountID int64, amount float64, creds corebank.Credentials) (*corebank.TransactionResult, error) {
	m.calls++
	return m.WithdrawFunc(ctx, accountID, amount, creds)
}

func (m *MockAPI) Transfer(ctx context.Context, fromAccountID, toAccountID int64, amount float64, creds corebank.Credentials) (*corebank.TransactionResult, error) {
	m.calls++
	return m.TransferFunc(ctx, fromAccountID, toAccountID, amount, creds)
}

type staticCreds struct {
	creds corebank.Credentials
	err   error
}

func (s staticCreds) Credentials() (corebank.Credentials, error) {
	return s.creds, s.err
}

// countingLister records refreshes so tests can assert on cache
// reconciliation without a real API.
type countingLister struct {
	accounts []corebank.Account
	calls    int
}

func (l *countingLister) ListAccounts(ctx context.Context, customerID int64) ([]corebank.Account, error) {
	l.calls++
	return l.accounts, nil
}

func successResult(balance float64) *corebank.TransactionResult {
	return &corebank.TransactionResult{
		UpdatedAccount: corebank.Account{AccountID: 1001, AccountType: corebank.AccountTypeSavings, Balance: balance},
		Transaction: corebank.TransactionRecord{
			TransactionID:     77,
			AccountID:         1001,
			TransactionStatus: corebank.TxStatusSuccess,
		},
	}
}

func TestExecute_InvalidAmountFailsBeforeNetwork(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{"negative", "-5"},
		{"zero", "0"},
		{"not a number", "abc"},
		{"empty", ""},
		{"nan", "NaN"},
		{"infinity", "Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &MockAPI{}
			lister := &countingLister{}
			o := NewOrchestrator(api, account.NewCache(lister, 42), staticCreds{})

			_, err := o.Execute(context.Background(), Intent{
				Kind:      KindDeposit,
				AccountID: 1001,
				Amount:    tt.amount,
			})

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Execute(%q) error = %v, want ValidationError", tt.amount, err)
			}
			if verr.Reason != ReasonInvalidAmount {
				t.Errorf("Execute(%q) reason = %s, want %s", tt.amount, verr.Reason, ReasonInvalidAmount)
			}
			if api.calls != 0 {
				t.Errorf("Execute(%q) made %d API calls, want 0", tt.amount, api.calls)
			}
		})
	}
}

func TestExecute_InvalidRecipientFailsBeforeNetwork(t *testing.T) {
	api := &MockAPI{}
	lister := &countingLister{}
	o := NewOrchestrator(api, account.NewCache(lister, 42), staticCreds{})

	_, err := o.Execute(context.Background(), Intent{
		Kind:        KindTransfer,
		AccountID:   1001,
		ToAccountID: "not-an-account",
		Amount:      "50",
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Execute() error = %v, want ValidationError", err)
	}
	if verr.Reason != ReasonInvalidRecipient {
		t.Errorf("Execute() reason = %s, want %s", verr.Reason, ReasonInvalidRecipient)
	}
	if api.calls != 0 {
		t.Errorf("Execute() made %d API calls, want 0", api.calls)
	}
}

func TestExecute_DepositSuccessRefreshesCache(t *testing.T) {
	api := &MockAPI{
		DepositFunc: func(ctx context.Context, accountID int64, amount float64) (*corebank.TransactionResult, error) {
			if accountID != 1001 {
				t.Errorf("Deposit() accountID = %d, want 1001", accountID)
			}
			if amount != 250 {
				t.Errorf("Deposit() amount = %v, want 250", amount)
			}
			return successResult(750.00), nil
		},
	}
	lister := &countingLister{
		accounts: []corebank.Account{{AccountID: 1001, Balance: 750.00}},
	}
	cache := account.NewCache(lister, 42)
	o := NewOrchestrator(api, cache, staticCreds{})

	result, err := o.Execute(context.Background(), Intent{
		Kind:      KindDeposit,
		AccountID: 1001,
		Amount:    "250",
	})
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	if result.Balance != 750.00 {
		t.Errorf("Execute() balance = %v, want server-reported 750", result.Balance)
	}
	if want := "Your new balance is $750.00"; result.Message != want {
		t.Errorf("Execute() message = %q, want %q", result.Message, want)
	}
	if api.calls != 1 {
		t.Errorf("Execute() made %d API calls, want exactly 1", api.calls)
	}
	if lister.calls != 1 {
		t.Errorf("cache refreshed %d times, want 1", lister.calls)
	}
	if got := cache.Accounts(); len(got) != 1 || got[0].Balance != 750.00 {
		t.Errorf("cache after execute = %v, want the refreshed list", got)
	}
}

func TestExecute_WithdrawalUsesSessionCredentials(t *testing.T) {
	want := corebank.Credentials{Username: "anna@example.com", Password: "s3cret"}
	api := &MockAPI{
		WithdrawFunc: func(ctx context.Context, accountID int64, amount float64, creds corebank.Credentials) (*corebank.TransactionResult, error) {
			if creds != want {
				t.Errorf("Withdraw() creds = %+v, want %+v", creds, want)
			}
			return successResult(400.00), nil
		},
	}
	lister := &countingLister{}
	o := NewOrchestrator(api, account.NewCache(lister, 42), staticCreds{creds: want})

	result, err := o.Execute(context.Background(), Intent{
		Kind:      KindWithdrawal,
		AccountID: 1001,
		Amount:    "100",
	})
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if result.Balance != 400.00 {
		t.Errorf("Execute() balance = %v, want 400", result.Balance)
	}
}

func TestExecute_WithdrawalRejectionLeavesCacheAlone(t *testing.T) {
	apiErr := &corebank.APIError{
		StatusCode: 400,
		Remarks:    "Insufficient funds in account 1001",
	}
	api := &MockAPI{
		WithdrawFunc: func(ctx context.Context, accountID int64, amount float64, creds corebank.Credentials) (*corebank.TransactionResult, error) {
			return nil, apiErr
		},
	}
	lister := &countingLister{}
	o := NewOrchestrator(api, account.NewCache(lister, 42), staticCreds{})

	_, err := o.Execute(context.Background(), Intent{
		Kind:      KindWithdrawal,
		AccountID: 1001,
		Amount:    "9999",
	})
	if !errors.Is(err, apiErr) {
		t.Fatalf("Execute() error = %v, want the API rejection verbatim", err)
	}
	if got := corebank.Remarks(err); got != "Insufficient funds in account 1001" {
		t.Errorf("Remarks() = %q, want the server remarks verbatim", got)
	}
	if lister.calls != 0 {
		t.Errorf("cache refreshed %d times after rejection, want 0", lister.calls)
	}
}

func TestExecute_TransferSuccess(t *testing.T) {
	creds := corebank.Credentials{Username: "anna@example.com", Password: "s3cret"}
	api := &MockAPI{
		TransferFunc: func(ctx context.Context, fromAccountID, toAccountID int64, amount float64, got corebank.Credentials) (*corebank.TransactionResult, error) {
			if fromAccountID != 1001 || toAccountID != 2002 {
				t.Errorf("Transfer() accounts = %d -> %d, want 1001 -> 2002", fromAccountID, toAccountID)
			}
			if got != creds {
				t.Errorf("Transfer() creds = %+v, want %+v", got, creds)
			}
			return successResult(450.00), nil
		},
	}
	lister := &countingLister{}
	o := NewOrchestrator(api, account.NewCache(lister, 42), staticCreds{creds: creds})

	result, err := o.Execute(context.Background(), Intent{
		Kind:        KindTransfer,
		AccountID:   1001,
		ToAccountID: "2002",
		Amount:      "50",
	})
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if want := "Your new balance is $450.00"; result.Message != want {
		t.Errorf("Execute() message = %q, want %q", result.Message, want)
	}
}

func TestExecute_CredentialFailureSkipsAPI(t *testing.T) {
	credsErr := errors.New("session holds no credential")
	api := &MockAPI{}
	lister := &countingLister{}
	o := NewOrchestrator(api, account.NewCache(lister, 42), staticCreds{err: credsErr})

	_, err := o.Execute(context.Background(), Intent{
		Kind:      KindWithdrawal,
		AccountID: 1001,
		Amount:    "100",
	})
	if !errors.Is(err, credsErr) {
		t.Fatalf("Execute() error = %v, want credential failure", err)
	}
	if api.calls != 0 {
		t.Errorf("Execute() made %d API calls without credentials, want 0", api.calls)
	}
}

func TestExecute_UnknownKind(t *testing.T) {
	api := &MockAPI{}
	lister := &countingLister{}
	o := NewOrchestrator(api, account.NewCache(lister, 42), staticCreds{})

	_, err := o.Execute(context.Background(), Intent{Kind: "LOAN", AccountID: 1001, Amount: "100"})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Execute() error = %v, want ValidationError", err)
	}
	if verr.Reason != ReasonUnknownKind {
		t.Errorf("Execute() reason = %s, want %s", verr.Reason, ReasonUnknownKind)
	}
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{750, "$750.00"},
		{0.5, "$0.50"},
		{1234.567, "$1234.57"},
	}
	for _, tt := range tests {
		if got := FormatUSD(tt.amount); got != tt.want {
			t.Errorf("FormatUSD(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

package transaction

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"netbank/internal/domain/account"
	"netbank/internal/infrastructure/corebank"
)

// Kind of a money-movement intent.
type Kind string

const (
	KindDeposit    Kind = "DEPOSIT"
	KindWithdrawal Kind = "WITHDRAWAL"
	KindTransfer   Kind = "TRANSFER"
)

// Intent is a user-initiated money movement, carrying the raw form
// inputs. Parsing is the orchestrator's first duty so that malformed
// input never costs a network round-trip.
type Intent struct {
	Kind        Kind
	AccountID   int64
	ToAccountID string // transfer only, raw input
	Amount      string // raw input
}

// Reason classifies a precondition failure.
type Reason string

const (
	ReasonInvalidAmount    Reason = "InvalidAmount"
	ReasonInvalidRecipient Reason = "InvalidRecipient"
	ReasonUnknownKind      Reason = "UnknownKind"
)

// ValidationError is a client-side precondition failure. It is raised
// before any API call and handled entirely locally.
type ValidationError struct {
	Reason  Reason
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// API is the slice of the core-banking client the orchestrator uses.
type API interface {
	Deposit(ctx context.Context, accountID int64, amount float64) (*corebank.TransactionResult, error)
	Withdraw(ctx context.Context, accountID int64, amount float64, creds corebank.Credentials) (*corebank.TransactionResult, error)
	Transfer(ctx context.Context, fromAccountID, toAccountID int64, amount float64, creds corebank.Credentials) (*corebank.TransactionResult, error)
}

// CredentialSource supplies per-call proof of identity for withdrawals
// and transfers. In practice this is the authenticated session; the
// credential is never a hardcoded value.
type CredentialSource interface {
	Credentials() (corebank.Credentials, error)
}

// Result is the success notification payload. Balance is the
// server-reported balance, never a locally computed one.
type Result struct {
	Balance float64
	Message string
	Record  corebank.TransactionRecord
}

// Orchestrator turns an intent into exactly one API call and reconciles
// the cache afterwards. No retries, no idempotency keys, no client-side
// balance-sufficiency checks: the API is the single source of truth and
// its verdict is relayed as-is.
type Orchestrator struct {
	api   API
	cache *account.Cache
	creds CredentialSource
}

func NewOrchestrator(api API, cache *account.Cache, creds CredentialSource) *Orchestrator {
	return &Orchestrator{api: api, cache: cache, creds: creds}
}

// Execute runs one intent to completion.
//
// On success the cache is invalidated and refreshed before control
// returns, so the next read reflects server-confirmed state. On failure
// the cache is left alone: an APIError means the server confirmed
// nothing changed, and the NetworkError ambiguity is the view's to
// handle (it refreshes anyway for that case only).
func (o *Orchestrator) Execute(ctx context.Context, intent Intent) (*Result, error) {
	amount, err := parseAmount(intent.Amount)
	if err != nil {
		return nil, err
	}

	var result *corebank.TransactionResult
	switch intent.Kind {
	case KindDeposit:
		result, err = o.api.Deposit(ctx, intent.AccountID, amount)

	case KindWithdrawal:
		var creds corebank.Credentials
		creds, err = o.creds.Credentials()
		if err == nil {
			result, err = o.api.Withdraw(ctx, intent.AccountID, amount, creds)
		}

	case KindTransfer:
		var toID int64
		toID, err = parseAccountID(intent.ToAccountID)
		if err != nil {
			return nil, err
		}
		var creds corebank.Credentials
		creds, err = o.creds.Credentials()
		if err == nil {
			result, err = o.api.Transfer(ctx, intent.AccountID, toID, amount, creds)
		}

	default:
		return nil, &ValidationError{
			Reason:  ReasonUnknownKind,
			Message: fmt.Sprintf("unknown transaction kind %q", intent.Kind),
		}
	}
	if err != nil {
		return nil, err
	}

	o.cache.Invalidate()
	if err := o.cache.Refresh(ctx); err != nil {
		// The mutation is confirmed and the balance below is the
		// server's; a failed refresh only delays the list update.
		log.Printf("account refresh after %s failed: %v", intent.Kind, err)
	}

	balance := result.UpdatedAccount.Balance
	return &Result{
		Balance: balance,
		Message: fmt.Sprintf("Your new balance is %s", FormatUSD(balance)),
		Record:  result.Transaction,
	}, nil
}

// FormatUSD renders a server-reported amount with fixed two-decimal
// precision for display.
func FormatUSD(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// parseAmount accepts a positive finite decimal number; anything else
// fails before the network.
func parseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, &ValidationError{
			Reason:  ReasonInvalidAmount,
			Message: "Please enter a valid positive amount.",
		}
	}
	return amount, nil
}

// parseAccountID requires the recipient to be syntactically an account
// ID. Whether it exists is the API's call, not ours.
func parseAccountID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, &ValidationError{
			Reason:  ReasonInvalidRecipient,
			Message: "Please enter a valid recipient account number.",
		}
	}
	return id, nil
}

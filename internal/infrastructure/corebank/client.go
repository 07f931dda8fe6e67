package corebank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"netbank/internal/shared/telemetry"
)

const (
	defaultTimeout = 30 * time.Second

	loginPath    = "/auth/login"
	registerPath = "/customers/register"
)

// Client handles communication with the core-banking REST API. Every
// operation issues exactly one HTTP request; there is no retry and no
// idempotency key, so a timeout on a mutating call leaves the true
// server state unknown (surfaced as *NetworkError).
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Ensure Client implements ClientInterface
var _ ClientInterface = (*Client)(nil)

// NewClient creates a core-banking API client. baseURL is the API root,
// e.g. "http://localhost:8080/api".
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Login authenticates with the API and returns the resolved identity.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp LoginResponse
	if err := c.do(ctx, "login", http.MethodPost, loginPath, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register submits a new customer registration. The customer enters the
// admin approval queue; no identity is created until approval.
func (c *Client) Register(ctx context.Context, params RegistrationParams) error {
	return c.do(ctx, "register", http.MethodPost, registerPath, params, nil)
}

// ListAccounts fetches the full account list for a customer.
func (c *Client) ListAccounts(ctx context.Context, customerID int64) ([]Account, error) {
	var accounts []Account
	path := fmt.Sprintf("/customers/%d/accounts", customerID)
	if err := c.do(ctx, "list_accounts", http.MethodGet, path, nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// MiniStatement fetches the last few transactions of an account.
func (c *Client) MiniStatement(ctx context.Context, accountID int64) ([]TransactionRecord, error) {
	var records []TransactionRecord
	path := fmt.Sprintf("/accounts/%d/mini-statement", accountID)
	if err := c.do(ctx, "mini_statement", http.MethodGet, path, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FullStatement fetches the complete transaction history of an account.
func (c *Client) FullStatement(ctx context.Context, accountID int64) ([]TransactionRecord, error) {
	var records []TransactionRecord
	path := fmt.Sprintf("/accounts/%d/full-statement", accountID)
	if err := c.do(ctx, "full_statement", http.MethodGet, path, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Deposit credits amount to an account. The API carries the amount as a
// query parameter on this endpoint.
func (c *Client) Deposit(ctx context.Context, accountID int64, amount float64) (*TransactionResult, error) {
	path := fmt.Sprintf("/accounts/%d/deposit?amount=%s",
		accountID, url.QueryEscape(strconv.FormatFloat(amount, 'f', -1, 64)))
	var result TransactionResult
	if err := c.do(ctx, "deposit", http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Withdraw debits amount from an account. The API requires per-call
// proof of identity in the request body.
func (c *Client) Withdraw(ctx context.Context, accountID int64, amount float64, creds Credentials) (*TransactionResult, error) {
	body := struct {
		Amount float64 `json:"amount"`
		Credentials
	}{Amount: amount, Credentials: creds}

	path := fmt.Sprintf("/accounts/%d/withdraw", accountID)
	var result TransactionResult
	if err := c.do(ctx, "withdraw", http.MethodPost, path, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Transfer moves amount from one account to another. Recipient existence
// is verified by the API, not the client.
func (c *Client) Transfer(ctx context.Context, fromAccountID, toAccountID int64, amount float64, creds Credentials) (*TransactionResult, error) {
	body := struct {
		ReceiverAccountID int64   `json:"receiverAccountId"`
		Amount            float64 `json:"amount"`
		Credentials
	}{ReceiverAccountID: toAccountID, Amount: amount, Credentials: creds}

	path := fmt.Sprintf("/accounts/%d/transfer", fromAccountID)
	var result TransactionResult
	if err := c.do(ctx, "transfer", http.MethodPost, path, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateProfile replaces the customer's mutable profile fields and
// returns the server's confirmed snapshot.
func (c *Client) UpdateProfile(ctx context.Context, customerID int64, params ProfileParams) (*Customer, error) {
	var updated Customer
	path := fmt.Sprintf("/customers/%d", customerID)
	if err := c.do(ctx, "update_profile", http.MethodPut, path, params, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// OpenTermAccount requests a new term account for a customer.
func (c *Client) OpenTermAccount(ctx context.Context, customerID int64, params TermAccountParams) error {
	path := fmt.Sprintf("/accounts/term/%d", customerID)
	return c.do(ctx, "open_term_account", http.MethodPost, path, params, nil)
}

// do performs a single API round-trip: builds the request, classifies
// failures into the error taxonomy, and decodes a successful response
// into out (which may be nil when no body is expected).
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	start := time.Now()
	err := c.roundTrip(ctx, method, path, in, out)
	telemetry.ObserveAPICall(op, err, time.Since(start))
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, in, out any) error {
	var reqBody io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: method + " " + path, Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthError{StatusCode: resp.StatusCode, Remarks: decodeRemarks(body)}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &APIError{StatusCode: resp.StatusCode, Remarks: decodeRemarks(body)}
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

// decodeRemarks pulls the human-readable remarks out of a failure body.
// The API is inconsistent here: mutation rejections nest remarks under
// transaction.transactionRemarks, auth failures return a bare string,
// and some endpoints use a message field.
func decodeRemarks(body []byte) string {
	var nested struct {
		Transaction struct {
			TransactionRemarks string `json:"transactionRemarks"`
		} `json:"transaction"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &nested); err == nil {
		if nested.Transaction.TransactionRemarks != "" {
			return nested.Transaction.TransactionRemarks
		}
		if nested.Message != "" {
			return nested.Message
		}
		if nested.Error != "" {
			return nested.Error
		}
	}

	var plain string
	if err := json.Unmarshal(body, &plain); err == nil {
		return plain
	}

	text := strings.TrimSpace(string(body))
	if len(text) > 0 && text[0] != '{' && text[0] != '[' {
		return text
	}
	return ""
}

package corebank

// Account types used by the core-banking API.
const (
	AccountTypeSavings = "SAVINGS"
	AccountTypeTerm    = "TERM"
)

// Transaction statuses reported by the core-banking API.
const (
	TxStatusSuccess = "SUCCESS"
	TxStatusPending = "PENDING"
	TxStatusFailed  = "FAILED"
)

// Customer is the profile snapshot returned by the API. It is immutable
// on the client side: profile updates replace the whole snapshot with
// the server's confirmed copy.
type Customer struct {
	CustomerID   int64  `json:"customerId"`
	CustomerName string `json:"customerName"`
	EmailID      string `json:"emailId"`
	PhoneNo      string `json:"phoneNo"`
	Age          int    `json:"age"`
	Gender       string `json:"gender"`
	Approved     bool   `json:"approved"`
}

// Account is a point-in-time snapshot of a server-side account. Balance
// is authoritative only on the server; the client never computes one.
type Account struct {
	AccountID   int64   `json:"accountId"`
	AccountType string  `json:"accountType"`
	Balance     float64 `json:"balance"`
}

// TransactionRecord is an entry of an account's statement. Read-only:
// records are produced exclusively by the API as a side effect of a
// transaction request.
type TransactionRecord struct {
	TransactionID      int64   `json:"transactionId"`
	AccountID          int64   `json:"accountId"`
	TransactionType    string  `json:"transactionType"`
	Amount             float64 `json:"amount"`
	TransactionDate    string  `json:"transactionDate"`
	TransactionStatus  string  `json:"transactionStatus"`
	TransactionRemarks string  `json:"transactionRemarks"`
}

// Credentials is the per-call proof of identity the API requires on
// mutating operations (withdraw, transfer).
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the resolved identity after authentication.
type LoginResponse struct {
	Role string   `json:"role"`
	User Customer `json:"user"`
}

// TransactionResult is the API's confirmation of an applied mutation.
// UpdatedAccount.Balance is the server-reported balance the UI must
// display; Transaction carries the posted statement entry.
type TransactionResult struct {
	UpdatedAccount Account           `json:"updatedAccount"`
	Transaction    TransactionRecord `json:"transaction"`
}

// RegistrationParams is the payload for POST /customers/register.
type RegistrationParams struct {
	CustomerName string `json:"customerName"`
	PhoneNo      string `json:"phoneNo"`
	EmailID      string `json:"emailId"`
	Age          int    `json:"age"`
	Gender       string `json:"gender"`
	User         struct {
		Password string `json:"password"`
	} `json:"user"`
}

// ProfileParams are the mutable profile fields for PUT /customers/{id}.
type ProfileParams struct {
	CustomerName string `json:"customerName"`
	EmailID      string `json:"emailId"`
}

// TermAccountParams configures a new term account request. Opening an
// account is a request to the API, never a local construction.
type TermAccountParams struct {
	InterestRate  float64 `json:"interestRate"`
	Balance       float64 `json:"balance"`
	DateOfOpening string  `json:"dateOfOpening"`
	Months        int     `json:"months"`
	PenaltyAmount float64 `json:"penaltyAmount"`
}

// Stats is the admin dashboard aggregate.
type Stats struct {
	TotalCustomers        int64   `json:"totalCustomers"`
	PendingApprovals      int64   `json:"pendingApprovals"`
	TotalDepositVolume    float64 `json:"totalDepositVolume"`
	TotalWithdrawalVolume float64 `json:"totalWithdrawalVolume"`
}

// TransactionFilter selects transactions for the admin report. Zero
// values mean "no constraint"; dates are API-format timestamps
// (2006-01-02T15:04:05).
type TransactionFilter struct {
	AccountID int64
	Type      string
	StartDate string
	EndDate   string
}

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"netbank/internal/domain/session"
	"netbank/internal/infrastructure/corebank"
)

type AccountHandler struct {
	client corebank.ClientInterface
	store  *session.Store
}

func NewAccountHandler(client corebank.ClientInterface, store *session.Store) *AccountHandler {
	return &AccountHandler{client: client, store: store}
}

// AccountListResponse is the cache snapshot plus the selection pointer.
type AccountListResponse struct {
	Accounts   []corebank.Account `json:"accounts"`
	SelectedID int64              `json:"selectedId"`
}

// HandleListAccounts serves the cached account list. GET returns the
// current snapshot; GET with refresh=1 fetches from the API first.
func (h *AccountHandler) HandleListAccounts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess, ok := requireCustomer(w, r)
	if !ok {
		return
	}
	cache := sess.Cache()

	if r.URL.Query().Get("refresh") == "1" {
		if err := cache.Refresh(r.Context()); err != nil {
			writeClientError(w, r, h.store, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, AccountListResponse{
		Accounts:   cache.Accounts(),
		SelectedID: cache.SelectedID(),
	})
}

type SelectAccountRequest struct {
	AccountID int64 `json:"accountId"`
}

// HandleSelectAccount moves the session's selection pointer. Unknown IDs
// are ignored; the response always reflects the resulting selection.
func (h *AccountHandler) HandleSelectAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess, ok := requireCustomer(w, r)
	if !ok {
		return
	}

	var req SelectAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cache := sess.Cache()
	cache.Select(req.AccountID)

	writeJSON(w, http.StatusOK, AccountListResponse{
		Accounts:   cache.Accounts(),
		SelectedID: cache.SelectedID(),
	})
}

// HandleStatement serves an account statement. The path carries the
// account ID; ?full=1 selects the complete history over the mini
// statement.
func (h *AccountHandler) HandleStatement(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess, ok := requireCustomer(w, r)
	if !ok {
		return
	}

	accountID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}
	if !h.ownsAccount(sess, accountID) {
		writeError(w, http.StatusForbidden, "Account does not belong to this session")
		return
	}

	var records []corebank.TransactionRecord
	if r.URL.Query().Get("full") == "1" {
		records, err = h.client.FullStatement(r.Context(), accountID)
	} else {
		records, err = h.client.MiniStatement(r.Context(), accountID)
	}
	if err != nil {
		writeClientError(w, r, h.store, err)
		return
	}
	if records == nil {
		records = []corebank.TransactionRecord{}
	}

	writeJSON(w, http.StatusOK, records)
}

type TermAccountRequest struct {
	InterestRate  float64 `json:"interestRate"`
	Balance       float64 `json:"balance"`
	DateOfOpening string  `json:"dateOfOpening"`
	Months        int     `json:"months"`
	PenaltyAmount float64 `json:"penaltyAmount"`
}

// HandleOpenTermAccount requests a new term account from the API, then
// refreshes the cache so the new account shows up in the list.
func (h *AccountHandler) HandleOpenTermAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess, ok := requireCustomer(w, r)
	if !ok {
		return
	}

	var req TermAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Balance <= 0 || req.Months <= 0 {
		writeError(w, http.StatusBadRequest, "Opening balance and term length must be positive")
		return
	}

	customerID := sess.Identity().User.CustomerID
	err := h.client.OpenTermAccount(r.Context(), customerID, corebank.TermAccountParams{
		InterestRate:  req.InterestRate,
		Balance:       req.Balance,
		DateOfOpening: req.DateOfOpening,
		Months:        req.Months,
		PenaltyAmount: req.PenaltyAmount,
	})
	if err != nil {
		writeClientError(w, r, h.store, err)
		return
	}

	cache := sess.Cache()
	cache.Invalidate()
	if err := cache.Refresh(r.Context()); err != nil {
		writeClientError(w, r, h.store, err)
		return
	}

	writeJSON(w, http.StatusCreated, AccountListResponse{
		Accounts:   cache.Accounts(),
		SelectedID: cache.SelectedID(),
	})
}

func (h *AccountHandler) ownsAccount(sess *session.Session, accountID int64) bool {
	for _, acc := range sess.Cache().Accounts() {
		if acc.AccountID == accountID {
			return true
		}
	}
	return false
}

package http

import (
	"encoding/json"
	"log"
	"net/http"

	"netbank/internal/domain/session"
	"netbank/internal/domain/transaction"
	"netbank/internal/infrastructure/corebank"
)

type TransactionHandler struct {
	client corebank.ClientInterface
	store  *session.Store
}

func NewTransactionHandler(client corebank.ClientInterface, store *session.Store) *TransactionHandler {
	return &TransactionHandler{client: client, store: store}
}

type ExecuteRequest struct {
	Kind        transaction.Kind `json:"kind"`
	AccountID   int64            `json:"accountId"`
	ToAccountID string           `json:"toAccountId"`
	Amount      string           `json:"amount"`
}

type ExecuteResponse struct {
	Balance float64                    `json:"balance"`
	Message string                     `json:"message"`
	Record  corebank.TransactionRecord `json:"record"`
}

// HandleExecute runs one money-movement intent through the orchestrator.
// Amounts arrive as raw strings so validation stays client-side and
// malformed input never reaches the API.
func (h *TransactionHandler) HandleExecute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess, ok := requireCustomer(w, r)
	if !ok {
		return
	}

	var req ExecuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	accountID := req.AccountID
	if accountID == 0 {
		accountID = sess.Cache().SelectedID()
	}
	if !h.ownsAccount(sess, accountID) {
		writeError(w, http.StatusForbidden, "Account does not belong to this session")
		return
	}

	orch := transaction.NewOrchestrator(h.client, sess.Cache(), sess)
	result, err := orch.Execute(r.Context(), transaction.Intent{
		Kind:        req.Kind,
		AccountID:   accountID,
		ToAccountID: req.ToAccountID,
		Amount:      req.Amount,
	})
	if err != nil {
		// A broken connection leaves the true server state unknown, so
		// the displayed balance could be stale either way. Refreshing
		// converges the cache on whatever the server actually did. A
		// business rejection needs no refresh: the server confirmed
		// nothing changed.
		if corebank.IsNetwork(err) {
			if rerr := sess.Cache().Refresh(r.Context()); rerr != nil {
				log.Printf("account refresh after ambiguous %s failed: %v", req.Kind, rerr)
			}
		}
		writeClientError(w, r, h.store, err)
		return
	}

	writeJSON(w, http.StatusOK, ExecuteResponse{
		Balance: result.Balance,
		Message: result.Message,
		Record:  result.Record,
	})
}

func (h *TransactionHandler) ownsAccount(sess *session.Session, accountID int64) bool {
	for _, acc := range sess.Cache().Accounts() {
		if acc.AccountID == accountID {
			return true
		}
	}
	return false
}

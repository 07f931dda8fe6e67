package http

import (
	"net/http"
	"strconv"

	"netbank/internal/domain/session"
	"netbank/internal/infrastructure/corebank"
)

// AdminHandler relays admin operations to the core-banking API. The API
// enforces authorization on its side too; the role check here keeps
// customer sessions from even issuing the calls.
type AdminHandler struct {
	client corebank.ClientInterface
	store  *session.Store
}

func NewAdminHandler(client corebank.ClientInterface, store *session.Store) *AdminHandler {
	return &AdminHandler{client: client, store: store}
}

// HandleStats serves the dashboard aggregates.
func (h *AdminHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	stats, err := h.client.GetStats(r.Context())
	if err != nil {
		writeClientError(w, r, h.store, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// HandlePendingCustomers lists registrations awaiting approval.
func (h *AdminHandler) HandlePendingCustomers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	customers, err := h.client.PendingCustomers(r.Context())
	if err != nil {
		writeClientError(w, r, h.store, err)
		return
	}
	if customers == nil {
		customers = []corebank.Customer{}
	}
	writeJSON(w, http.StatusOK, customers)
}

// HandleApproval approves or declines a pending registration depending
// on the action path segment.
func (h *AdminHandler) HandleApproval(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	customerID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	switch r.PathValue("action") {
	case "approve":
		err = h.client.ApproveCustomer(r.Context(), customerID)
	case "decline":
		err = h.client.DeclineCustomer(r.Context(), customerID)
	default:
		writeError(w, http.StatusBadRequest, "Unknown action")
		return
	}
	if err != nil {
		writeClientError(w, r, h.store, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleCustomers lists all customers (GET).
func (h *AdminHandler) HandleCustomers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	customers, err := h.client.ListCustomers(r.Context())
	if err != nil {
		writeClientError(w, r, h.store, err)
		return
	}
	if customers == nil {
		customers = []corebank.Customer{}
	}
	writeJSON(w, http.StatusOK, customers)
}

// HandleCustomerByID deletes a customer (DELETE).
func (h *AdminHandler) HandleCustomerByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	customerID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	if err := h.client.DeleteCustomer(r.Context(), customerID); err != nil {
		writeClientError(w, r, h.store, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleInterest serves the API-computed yearly interest for an account.
func (h *AdminHandler) HandleInterest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	accountID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	interest, err := h.client.AccountInterest(r.Context(), accountID)
	if err != nil {
		writeClientError(w, r, h.store, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]float64{"interest": interest})
}

// HandleTransactionReport serves the filtered transaction report. Filter
// criteria arrive as query parameters; absent parameters mean no
// constraint.
func (h *AdminHandler) HandleTransactionReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	filter := corebank.TransactionFilter{
		Type:      r.URL.Query().Get("type"),
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
	}
	if raw := r.URL.Query().Get("accountId"); raw != "" {
		accountID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid account ID")
			return
		}
		filter.AccountID = accountID
	}

	records, err := h.client.FilterTransactions(r.Context(), filter)
	if err != nil {
		writeClientError(w, r, h.store, err)
		return
	}
	if records == nil {
		records = []corebank.TransactionRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

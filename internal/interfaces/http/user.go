package http

import (
	"encoding/json"
	"log"
	"net/http"

	"netbank/internal/domain/session"
	"netbank/internal/infrastructure/corebank"
	"netbank/internal/shared/middleware"
)

type UserHandler struct {
	client corebank.ClientInterface
	store  *session.Store
}

func NewUserHandler(client corebank.ClientInterface, store *session.Store) *UserHandler {
	return &UserHandler{client: client, store: store}
}

// HandleMe returns the current identity snapshot.
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess, ok := middleware.SessionFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id := sess.Identity()
	writeJSON(w, http.StatusOK, map[string]any{
		"role": id.Role,
		"user": id.User,
	})
}

type UpdateProfileRequest struct {
	CustomerName string `json:"customerName"`
	EmailID      string `json:"emailId"`
}

// HandleUpdateProfile sends the mutable profile fields to the API and,
// on confirmation, replaces the session identity wholesale with the
// server's snapshot. The identity is never patched field by field.
func (h *UserHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess, ok := requireCustomer(w, r)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CustomerName == "" || req.EmailID == "" {
		writeError(w, http.StatusBadRequest, "Name and email are required")
		return
	}

	id := sess.Identity()
	updated, err := h.client.UpdateProfile(r.Context(), id.User.CustomerID, corebank.ProfileParams{
		CustomerName: req.CustomerName,
		EmailID:      req.EmailID,
	})
	if err != nil {
		writeClientError(w, r, h.store, err)
		return
	}

	if err := sess.ReplaceIdentity(session.Identity{Role: id.Role, User: updated}); err != nil {
		log.Printf("failed to replace identity for customer %d: %v", id.User.CustomerID, err)
		writeError(w, http.StatusInternalServerError, corebank.GenericFailureMessage)
		return
	}
	sess.ConsumeLanding()

	// A profile update is a mutation like any other: the account list
	// carries owner fields, so the cached snapshot is stale now.
	sess.Cache().Invalidate()
	if err := sess.Cache().Refresh(r.Context()); err != nil {
		log.Printf("account refresh after profile update failed: %v", err)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"role": id.Role,
		"user": updated,
	})
}

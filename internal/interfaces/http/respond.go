package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"netbank/internal/domain/session"
	"netbank/internal/domain/transaction"
	"netbank/internal/infrastructure/corebank"
	"netbank/internal/shared/middleware"
)

// ErrorResponse carries the user-visible failure text. Remarks from the
// core-banking API are relayed verbatim; everything else gets the
// generic fallback.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeClientError maps a core-banking client failure onto an HTTP
// response. An auth rejection tears the session down first: the stored
// identity is no longer honored by the API, so keeping it would let the
// UI act on an identity the backend already revoked.
func writeClientError(w http.ResponseWriter, r *http.Request, store *session.Store, err error) {
	var verr *transaction.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, verr.Message)
		return
	}

	switch {
	case corebank.IsAuth(err):
		if sess, ok := middleware.SessionFrom(r); ok {
			store.Delete(sess.ID)
		}
		clearSessionCookie(w, r)
		writeError(w, http.StatusUnauthorized, corebank.Remarks(err))

	case corebank.IsNetwork(err):
		log.Printf("core-banking API unreachable: %v", err)
		writeError(w, http.StatusBadGateway, corebank.GenericFailureMessage)

	default:
		var apiErr *corebank.APIError
		if errors.As(err, &apiErr) {
			writeError(w, http.StatusBadRequest, corebank.Remarks(err))
			return
		}
		log.Printf("unexpected error: %v", err)
		writeError(w, http.StatusInternalServerError, corebank.GenericFailureMessage)
	}
}

// requireCustomer resolves the request's customer session. Admin
// sessions own no accounts, so account endpoints reject them.
func requireCustomer(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, ok := middleware.SessionFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}
	if sess.Identity().Role != session.RoleCustomer {
		writeError(w, http.StatusForbidden, "Customer session required")
		return nil, false
	}
	return sess, true
}

// requireAdmin resolves the request's admin session.
func requireAdmin(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, ok := middleware.SessionFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}
	if sess.Identity().Role != session.RoleAdmin {
		writeError(w, http.StatusForbidden, "Admin session required")
		return nil, false
	}
	return sess, true
}

func clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	secure := r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

package http

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"netbank/internal/domain/account"
	"netbank/internal/domain/session"
	"netbank/internal/infrastructure/corebank"
	"netbank/internal/shared/auth"
	"netbank/internal/shared/middleware"
)

type AuthHandler struct {
	client corebank.ClientInterface
	store  *session.Store
	jwt    *auth.JWT
}

func NewAuthHandler(client corebank.ClientInterface, store *session.Store, jwt *auth.JWT) *AuthHandler {
	return &AuthHandler{client: client, store: store, jwt: jwt}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Role       session.Role       `json:"role"`
	User       *corebank.Customer `json:"user"`
	RedirectTo string             `json:"redirectTo"`
}

// HandleLogin authenticates against the core-banking API and opens a
// session. The resolved role decides the session shape: customers get
// an account cache primed before the response, admins do not.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	ctx := r.Context()

	resp, err := h.client.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeClientError(w, r, h.store, err)
		return
	}

	role := session.RoleCustomer
	if strings.EqualFold(resp.Role, "ADMIN") {
		role = session.RoleAdmin
	}
	identity := session.Identity{Role: role, User: &resp.User}

	var cache *account.Cache
	if role == session.RoleCustomer {
		cache = account.NewCache(h.client, resp.User.CustomerID)
		if err := cache.Refresh(ctx); err != nil {
			// The identity is valid; the list loads on the next refresh.
			log.Printf("initial account refresh for customer %d failed: %v", resp.User.CustomerID, err)
		}
	}

	sess, err := h.store.Create(identity, req.Password, cache)
	if err != nil {
		log.Printf("failed to create session for %s: %v", req.Email, err)
		writeError(w, http.StatusInternalServerError, corebank.GenericFailureMessage)
		return
	}

	token, err := h.jwt.Generate(sess.ID, string(role))
	if err != nil {
		log.Printf("failed to sign session token: %v", err)
		h.store.Delete(sess.ID)
		writeError(w, http.StatusInternalServerError, corebank.GenericFailureMessage)
		return
	}

	setSessionCookie(w, r, token)

	redirectTo := session.LandingView(role)
	sess.ConsumeLanding()

	writeJSON(w, http.StatusOK, LoginResponse{
		Role:       role,
		User:       identity.User,
		RedirectTo: redirectTo,
	})
}

// HandleLogout ends the session. The transition back to anonymous is
// synchronous: by the time the response is written, the session is gone.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if sess, ok := middleware.SessionFrom(r); ok {
		h.store.Delete(sess.ID)
	}
	clearSessionCookie(w, r)

	w.WriteHeader(http.StatusNoContent)
}

type RegisterRequest struct {
	CustomerName string `json:"customerName"`
	EmailID      string `json:"emailId"`
	PhoneNo      string `json:"phoneNo"`
	Age          int    `json:"age"`
	Gender       string `json:"gender"`
	Password     string `json:"password"`
}

// HandleRegister relays a registration to the core-banking API. The new
// customer lands in the admin approval queue; no session is opened.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CustomerName == "" || req.EmailID == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Name, email, and password are required")
		return
	}

	params := corebank.RegistrationParams{
		CustomerName: req.CustomerName,
		EmailID:      req.EmailID,
		PhoneNo:      req.PhoneNo,
		Age:          req.Age,
		Gender:       req.Gender,
	}
	params.User.Password = req.Password

	if err := h.client.Register(r.Context(), params); err != nil {
		writeClientError(w, r, h.store, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Registration submitted. Your account is pending approval.",
	})
}

// setSessionCookie sets the session token as an HttpOnly cookie
func setSessionCookie(w http.ResponseWriter, r *http.Request, token string) {
	secure := r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // 24 hours (matches token expiration)
	})
}

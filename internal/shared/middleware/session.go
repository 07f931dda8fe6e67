package middleware

import (
	"context"
	"net/http"

	"netbank/internal/domain/session"
	"netbank/internal/shared/auth"
)

type ContextKey string

const SessionKey ContextKey = "session"

// CookieName is the session cookie issued on login.
const CookieName = "session_token"

// Resolve attaches the caller's session to the request context when the
// session cookie carries a valid token for a live session. It never
// rejects: anonymous requests pass through without a session, and the
// guard decides what each view does about that.
func Resolve(jwt *auth.JWT, store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := jwt.Validate(cookie.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			sess, ok := store.Get(claims.SessionID)
			if !ok {
				// Token outlived the session (restart or logout).
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFrom extracts the resolved session from the request context.
func SessionFrom(r *http.Request) (*session.Session, bool) {
	sess, ok := r.Context().Value(SessionKey).(*session.Session)
	return sess, ok
}

// IdentityFrom returns the request's identity, anonymous when no
// session is attached.
func IdentityFrom(r *http.Request) session.Identity {
	if sess, ok := SessionFrom(r); ok {
		return sess.Identity()
	}
	return session.Anonymous()
}

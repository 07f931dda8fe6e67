package http

import (
	"net/http"

	"netbank/internal/domain/session"
	"netbank/internal/shared/middleware"
	"netbank/internal/web"
)

// HandleHealth returns a simple health check response.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// Page serves an embedded HTML view behind the session guard. The guard
// decision is a pure function of identity and view; this wrapper just
// carries it out.
func Page(view, file string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := middleware.IdentityFrom(r)

		decision := session.Check(id, view)
		if !decision.Allow {
			http.Redirect(w, r, decision.RedirectTo, http.StatusFound)
			return
		}

		// A logged-in user opening the login page (or the root) still
		// owed a landing redirect goes to their landing view instead.
		if id.Authenticated() && (view == session.ViewLogin || view == session.ViewHome) {
			if sess, ok := middleware.SessionFrom(r); ok && sess.ConsumeLanding() {
				http.Redirect(w, r, session.LandingView(id.Role), http.StatusFound)
				return
			}
		}

		http.ServeFileFS(w, r, web.FS, file)
	}
}

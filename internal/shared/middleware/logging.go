package middleware

import (
	"log"
	"net/http"
	"time"

	"netbank/internal/domain/session"
)

type responseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func wrapResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w}
}

func (rw *responseWriter) Status() int {
	return rw.status
}

func (rw *responseWriter) WriteHeader(code int) {
	if rw.wroteHeader {
		return
	}

	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
	rw.wroteHeader = true
}

// Logging writes one line per request: method, path, status, duration
// and the resolved session role. It must run inside Resolve so the
// session is already in the request context.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := wrapResponseWriter(w)
		next.ServeHTTP(wrapped, r)

		status := wrapped.status
		if status == 0 {
			status = http.StatusOK
		}

		log.Printf(
			"%s %s %d %s role=%s",
			r.Method,
			r.URL.Path,
			status,
			time.Since(start),
			requestRole(r),
		)
	})
}

// requestRole names the caller for the access log without touching the
// identity itself.
func requestRole(r *http.Request) session.Role {
	if sess, ok := SessionFrom(r); ok {
		return sess.Identity().Role
	}
	return session.RoleNone
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSecureCookies_AddsMissingAttributes(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Set-Cookie", "session_token=abc; Path=/")
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	SecureCookies(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	cookie := rr.Header().Get("Set-Cookie")
	for _, want := range []string{"Secure", "HttpOnly", "SameSite=Lax"} {
		if !strings.Contains(cookie, want) {
			t.Errorf("Set-Cookie = %q, missing %q", cookie, want)
		}
	}
}

func TestSecureCookies_KeepsExplicitSameSite(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Set-Cookie", "session_token=abc; Path=/; SameSite=Strict")
		w.Write([]byte("ok"))
	})

	rr := httptest.NewRecorder()
	SecureCookies(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	cookie := rr.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, "SameSite=Strict") {
		t.Errorf("Set-Cookie = %q, want the explicit SameSite kept", cookie)
	}
	if strings.Contains(cookie, "SameSite=Lax") {
		t.Errorf("Set-Cookie = %q, fallback applied over an explicit attribute", cookie)
	}
}

func TestHSTS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	HSTS(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rr.Header().Get("Strict-Transport-Security"); !strings.Contains(got, "max-age=31536000") {
		t.Errorf("Strict-Transport-Security = %q, want a one-year max-age", got)
	}
}

func TestIsHostAllowed(t *testing.T) {
	tests := []struct {
		name         string
		host         string
		allowedHosts []string
		want         bool
	}{
		{
			name:         "empty list allows everything",
			host:         "netbank.example.com",
			allowedHosts: nil,
			want:         true,
		},
		{
			name:         "exact match",
			host:         "netbank.example.com",
			allowedHosts: []string{"netbank.example.com"},
			want:         true,
		},
		{
			name:         "request port ignored",
			host:         "netbank.example.com:8443",
			allowedHosts: []string{"netbank.example.com"},
			want:         true,
		},
		{
			name:         "allowed port ignored",
			host:         "localhost",
			allowedHosts: []string{"localhost:3000"},
			want:         true,
		},
		{
			name:         "case insensitive",
			host:         "NetBank.Example.COM",
			allowedHosts: []string{"netbank.example.com"},
			want:         true,
		},
		{
			name:         "match later in list",
			host:         "staging.example.com",
			allowedHosts: []string{"netbank.example.com", "staging.example.com"},
			want:         true,
		},
		{
			name:         "unknown host rejected",
			host:         "evil.example.net",
			allowedHosts: []string{"netbank.example.com"},
			want:         false,
		},
		{
			name:         "subdomain is not its parent",
			host:         "sub.netbank.example.com",
			allowedHosts: []string{"netbank.example.com"},
			want:         false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsHostAllowed(tt.host, tt.allowedHosts)
			if got != tt.want {
				t.Errorf("IsHostAllowed(%q, %v) = %v, want %v",
					tt.host, tt.allowedHosts, got, tt.want)
			}
		})
	}
}

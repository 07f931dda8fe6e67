package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"netbank/internal/domain/session"
	"netbank/internal/infrastructure/corebank"
)

func TestPage_AnonymousRedirectedToLogin(t *testing.T) {
	handler := Page(session.ViewAccountSummary, "summary.html")

	rec := doRequest(handler, httptest.NewRequest(http.MethodGet, "/account/summary", nil))

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != session.ViewLogin {
		t.Errorf("redirect = %q, want %q", got, session.ViewLogin)
	}
}

func TestPage_CustomerOnAdminViewRedirectedToLanding(t *testing.T) {
	client := &MockClient{}
	client.ListAccountsFunc = func(ctx context.Context, customerID int64) ([]corebank.Account, error) {
		return nil, nil
	}
	store := newTestStore(t)
	sess := newCustomerSession(t, client, store)
	handler := Page(session.ViewAdminHome, "admin.html")

	req := withSession(httptest.NewRequest(http.MethodGet, "/admin", nil), sess)
	rec := doRequest(handler, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != session.ViewAccountSummary {
		t.Errorf("redirect = %q, want %q", got, session.ViewAccountSummary)
	}
}

func TestPage_LandingRedirectFiresOnce(t *testing.T) {
	client := &MockClient{}
	client.ListAccountsFunc = func(ctx context.Context, customerID int64) ([]corebank.Account, error) {
		return nil, nil
	}
	store := newTestStore(t)
	sess := newCustomerSession(t, client, store)
	handler := Page(session.ViewLogin, "login.html")

	req := withSession(httptest.NewRequest(http.MethodGet, "/login", nil), sess)
	rec := doRequest(handler, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("first visit: status = %d, want 302", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != session.ViewAccountSummary {
		t.Errorf("first visit redirect = %q, want %q", got, session.ViewAccountSummary)
	}

	// Second visit: the landing redirect is spent, the page renders.
	req = withSession(httptest.NewRequest(http.MethodGet, "/login", nil), sess)
	rec = doRequest(handler, req)
	if rec.Code != http.StatusOK {
		t.Errorf("second visit: status = %d, want 200", rec.Code)
	}
}

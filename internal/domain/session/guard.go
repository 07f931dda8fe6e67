package session

import (
	"strings"

	"netbank/internal/infrastructure/corebank"
)

// Role of the current identity. The session state machine has exactly
// three states: anonymous, customer session, admin session. Login moves
// anonymous into one of the session states; logout is the only way back.
// There is no transition between the two session states.
type Role string

const (
	RoleNone     Role = "NONE"
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// Identity is the authenticated principal. Views receive it read-only;
// it is owned and replaced wholesale by the session store.
type Identity struct {
	Role Role
	User *corebank.Customer
}

// Anonymous is the identity of an unauthenticated visitor.
func Anonymous() Identity {
	return Identity{Role: RoleNone}
}

// Authenticated reports whether the identity belongs to a logged-in user.
func (id Identity) Authenticated() bool {
	return id.Role != RoleNone && id.User != nil
}

// Well-known views.
const (
	ViewHome     = "/"
	ViewLogin    = "/login"
	ViewRegister = "/register"

	ViewAccountSummary = "/account/summary"
	ViewAdminHome      = "/admin"

	accountPrefix = "/account"
	adminPrefix   = "/admin"
)

// Decision is the guard's verdict for a requested view.
type Decision struct {
	Allow      bool
	RedirectTo string
}

func allow() Decision {
	return Decision{Allow: true}
}

func redirect(target string) Decision {
	return Decision{RedirectTo: target}
}

// Check decides whether the identity may reach the requested view. It is
// a pure function of its inputs: same identity and view, same decision.
func Check(id Identity, view string) Decision {
	switch {
	case isUnder(view, adminPrefix):
		if !id.Authenticated() {
			return redirect(ViewLogin)
		}
		if id.Role != RoleAdmin {
			// Valid identity, wrong role: send them to their own
			// landing view rather than back through login.
			return redirect(LandingView(id.Role))
		}
		return allow()

	case isUnder(view, accountPrefix):
		if !id.Authenticated() {
			return redirect(ViewLogin)
		}
		return allow()

	default:
		return allow()
	}
}

// LandingView is the default view for a freshly resolved role. The
// session store arranges for this redirect to be issued once per
// identity change, not on every render.
func LandingView(role Role) string {
	switch role {
	case RoleAdmin:
		return ViewAdminHome
	case RoleCustomer:
		return ViewAccountSummary
	default:
		return ViewHome
	}
}

// isUnder reports whether view is prefix itself or nested below it.
func isUnder(view, prefix string) bool {
	return view == prefix || strings.HasPrefix(view, prefix+"/")
}

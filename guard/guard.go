package guard

import (
	"github.com/structaware/structaware-go/client/auth/store"
	"github.com/structaware/structaware-go/session"
)

// Decision is the outcome of a route-guard check.
type Decision int

const (
	// Allow renders the protected view.
	Allow Decision = iota
	// Wait renders a neutral waiting indicator; redirecting while the
	// session is still resolving would flash the login screen on reload.
	Wait
	// Redirect sends the user to the anonymous entry point. Any deep-link
	// target is discarded; return-URL preservation is not implemented.
	Redirect
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Wait:
		return "wait"
	}
	return "redirect"
}

// LoginRoute is the anonymous entry point redirects land on.
const LoginRoute = "/login"

// Guard gates protected views on session state. A view is rendered only
// when the in-memory state is Authenticated and the credential store still
// holds a session token; the two must agree.
type Guard struct {
	session     *session.Controller
	credentials store.Store
}

// New creates a route guard over the given controller and credential store.
func New(controller *session.Controller, credentials store.Store) *Guard {
	return &Guard{session: controller, credentials: credentials}
}

// Decide returns the access decision for a protected view.
func (g *Guard) Decide() Decision {
	snap := g.session.Snapshot()
	switch snap.State {
	case session.StateUninitialized, session.StateLoading:
		return Wait
	case session.StateAuthenticated:
		if _, ok := g.credentials.Lookup(); ok && snap.User != nil {
			return Allow
		}
		return Redirect
	default:
		return Redirect
	}
}

// RedirectTarget returns where a Redirect decision navigates to.
func (g *Guard) RedirectTarget() string {
	return LoginRoute
}

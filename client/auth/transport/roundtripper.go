package transport

import (
	"net/http"
	"sync"

	"github.com/structaware/structaware-go/client/auth/store"
	"github.com/structaware/structaware-go/storage"
	"golang.org/x/oauth2"
)

// UnauthorizedHandler is notified when a request that carried a session
// token came back with 401. The handler receives the token that failed, so
// it can tell a stale rejection from one aimed at the current credential.
type UnauthorizedHandler func(failed *oauth2.Token)

// RoundTripper decorates an http.RoundTripper with session authorization:
// it attaches the stored session token as a bearer header on every request
// and reports authorization failures to the registered handler. It never
// navigates or clears credentials itself; that is the session controller's
// job.
type RoundTripper struct {
	store          store.Store
	transport      http.RoundTripper
	mux            sync.Mutex
	onUnauthorized UnauthorizedHandler
}

// New creates a RoundTripper with the supplied options.
func New(options ...Option) *RoundTripper {
	ret := &RoundTripper{
		transport: http.DefaultTransport,
		store:     store.New(storage.NewMemory()),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Store returns the credential store backing this transport.
func (r *RoundTripper) Store() store.Store {
	return r.store
}

// OnUnauthorized registers the handler invoked on authorization failures.
func (r *RoundTripper) OnUnauthorized(handler UnauthorizedHandler) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.onUnauthorized = handler
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	next := clone(req)
	token, authenticated := r.store.Lookup()
	if authenticated {
		next.Header.Set("Authorization", "Bearer "+token.AccessToken)
	}
	resp, err := r.transport.RoundTrip(next)
	if err != nil {
		return nil, err
	}
	// Only a failure of an authenticated call invalidates the session; an
	// unauthenticated 401 (e.g. bad login credentials) stays with the caller.
	if resp.StatusCode == http.StatusUnauthorized && authenticated {
		r.notifyUnauthorized(token)
	}
	return resp, nil
}

func (r *RoundTripper) notifyUnauthorized(failed *oauth2.Token) {
	r.mux.Lock()
	handler := r.onUnauthorized
	r.mux.Unlock()
	if handler != nil {
		handler(failed)
	}
}

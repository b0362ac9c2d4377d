package transport

import (
	"net/http"

	"github.com/structaware/structaware-go/client/auth/store"
)

type Option func(*RoundTripper)

// WithStore sets the credential store consulted before every request.
func WithStore(store store.Store) Option {
	return func(t *RoundTripper) {
		t.store = store
	}
}

// WithTransport sets the underlying round tripper.
func WithTransport(transport http.RoundTripper) Option {
	return func(t *RoundTripper) {
		t.transport = transport
	}
}

// WithUnauthorizedHandler sets the authorization-failure handler.
func WithUnauthorizedHandler(handler UnauthorizedHandler) Option {
	return func(t *RoundTripper) {
		t.onUnauthorized = handler
	}
}

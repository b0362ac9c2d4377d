package client

import "net/http"

// Option represents a Service option.
type Option func(*Service)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *Service) {
		s.httpClient = httpClient
	}
}

// WithRoundTripper installs a round tripper, typically the authorization
// transport from client/auth/transport.
func WithRoundTripper(transport http.RoundTripper) Option {
	return func(s *Service) {
		s.httpClient = &http.Client{Transport: transport}
	}
}

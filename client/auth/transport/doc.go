// Package transport provides an http.RoundTripper decorator that attaches
// the stored session token to outgoing API requests and reports
// authorization failures (HTTP 401 on an authenticated call) to a
// registered handler. All other error classes pass through untouched and no
// retry is performed at this layer.
package transport

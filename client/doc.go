// Package client implements a typed Go client for the StructAware REST API.
//
// It provides:
//   - Strongly typed endpoint methods (Login, Register, GetProfile, …) that
//     avoid manual request/response handling.
//   - A transparent error shape: server failures surface as *client.Error
//     carrying the HTTP status and the server's message field.
//   - A per-request X-Request-Id header for correlation.
//
// Authorization is deliberately not handled here: install the round tripper
// from client/auth/transport to attach the stored session token and to be
// notified of authorization failures.
//
// Example:
//
//	rt := transport.New(transport.WithStore(credentials))
//	api := client.New(client.DefaultBaseURL, client.WithRoundTripper(rt))
//	resp, err := api.Login(ctx, &client.Credentials{Email: email, Password: password})
package client

// Package session implements the client-side session lifecycle: how a
// session token is acquired, cached, invalidated on expiry, and how the
// derived state (loading, authenticated, anonymous) is resolved from it.
//
// The Controller is the only writer of session state. Operations run to
// completion before yielding: the profile fetch following a successful
// login or registration completes (or fails) before the
// Authenticated/Anonymous determination is final. No call here retries,
// times out or cancels on its own; callers control cancellation through
// context.
package session

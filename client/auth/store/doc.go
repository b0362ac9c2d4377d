// Package store defines the credential store holding the session token pair
// used by the authorization transport in the sibling `transport` package.
//
// Tokens are persisted in cleartext in the backing storage; this mirrors the
// hosted product's use of browser local storage and is an acknowledged
// weakness, not a design goal.
package store

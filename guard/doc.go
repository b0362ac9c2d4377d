// Package guard implements the access-control check gating protected views
// on session state.
package guard

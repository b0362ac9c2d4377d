// Package app is the terminal front-end: it assembles the client runtime
// from options and drives the authentication views and the dashboard shell,
// with navigation to protected views gated by the route guard.
package app

// Package ui holds the transient presentation state that sits outside the
// session lifecycle: the persisted theme choice and the one-time
// first-login loading marker.
package ui

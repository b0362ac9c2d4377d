// Package storage provides the durable key-value state shared by the
// credential store and the transient UI controllers. It plays the role the
// browser's local storage plays in the hosted product: fixed keys, string
// values, per-installation persistence, no encryption.
package storage

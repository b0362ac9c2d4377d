// Package validate holds the declarative form schemas for the auth screens
// and the function evaluating them into structured field/message pairs.
package validate

package session

import "github.com/sirupsen/logrus"

// Option represents a Controller option.
type Option func(*Controller)

// WithLogger sets the structured logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithListener registers a state-change listener at construction time.
func WithListener(listener func(Snapshot)) Option {
	return func(c *Controller) {
		c.listeners = append(c.listeners, listener)
	}
}

package session

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/structaware/structaware-go/client"
	"github.com/structaware/structaware-go/client/auth/store"
	"golang.org/x/oauth2"
)

// Per-operation fallback messages, used when the server reports no message.
const (
	loginFallback          = "Login failed. Please try again."
	registerFallback       = "Registration failed. Please try again."
	forgotPasswordFallback = "Failed to send reset email. Please try again."
	resetPasswordFallback  = "Failed to reset password. Please try again."
	changePasswordFallback = "Failed to change password. Please try again."
	updateProfileFallback  = "Failed to update profile."
	preferencesFallback    = "Failed to update preferences."
	persistFallback        = "Failed to store session. Please try again."
)

// Controller owns the in-memory session state: the identity record, the
// profile and the derived State. It orchestrates login, registration,
// logout and the password flows, updating the credential store as it goes.
// Create one controller at application start and share it by reference;
// there is no ambient global.
type Controller struct {
	mu          sync.Mutex
	api         *client.Service
	credentials store.Store
	logger      *logrus.Logger

	state     State
	user      *client.User
	profile   *client.Profile
	errMsg    string
	listeners []func(Snapshot)
}

// New creates a session controller over the given API client and credential
// store. The controller starts Uninitialized; call Bootstrap to resolve the
// persisted session.
func New(api *client.Service, credentials store.Store, options ...Option) *Controller {
	ret := &Controller{
		api:         api,
		credentials: credentials,
		logger:      logrus.StandardLogger(),
		state:       StateUninitialized,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Snapshot returns an immutable view of the current session.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// State returns the current session state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers a listener notified after every state change. Views
// re-render from the delivered snapshot.
func (c *Controller) Subscribe(listener func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, listener)
}

// Bootstrap rehydrates session state from persisted credentials. With no
// stored token the controller goes straight to Anonymous without a network
// call; otherwise it enters Loading and resolves via a profile fetch. A
// failed fetch clears the credential store, so no stale token survives a
// failed bootstrap.
func (c *Controller) Bootstrap(ctx context.Context) Snapshot {
	if _, ok := c.credentials.Lookup(); !ok {
		c.transition(StateAnonymous)
		return c.Snapshot()
	}
	c.transition(StateLoading)
	c.resolveProfile(ctx)
	return c.Snapshot()
}

// Login exchanges credentials for a session. On success the token pair is
// persisted, the user is set from the response and a sequenced profile
// fetch completes before the state is final. On failure nothing is mutated
// and the returned error carries the server message (or a fallback).
func (c *Controller) Login(ctx context.Context, credentials *client.Credentials, remember bool) error {
	c.begin()
	resp, err := c.api.Login(ctx, credentials)
	if err != nil {
		return c.fail("login", client.Message(err, loginFallback), err)
	}
	return c.establish(ctx, "login", resp, remember)
}

// Register creates an account; the success and failure contracts match
// Login, including token persistence and the follow-up profile fetch.
func (c *Controller) Register(ctx context.Context, registration *client.Registration) error {
	c.begin()
	resp, err := c.api.Register(ctx, registration)
	if err != nil {
		return c.fail("register", client.Message(err, registerFallback), err)
	}
	return c.establish(ctx, "register", resp, false)
}

// Logout revokes the refresh token best-effort and always clears local
// session state; from the client's point of view logout never fails.
func (c *Controller) Logout(ctx context.Context) {
	if token, ok := c.credentials.Lookup(); ok && token.RefreshToken != "" {
		if err := c.api.Logout(ctx, token.RefreshToken); err != nil {
			c.logger.WithError(err).Warn("logout request failed")
		}
	}
	if err := c.credentials.Clear(); err != nil {
		c.logger.WithError(err).Warn("failed to clear credential store")
	}
	c.mu.Lock()
	c.user = nil
	c.profile = nil
	c.errMsg = ""
	c.state = StateAnonymous
	snap := c.snapshot()
	c.mu.Unlock()
	c.notify(snap)
	c.logger.WithField("operation", "logout").Info("session ended")
}

// ForgotPassword requests a reset email. Stateless: neither the credential
// store nor the in-memory user is touched.
func (c *Controller) ForgotPassword(ctx context.Context, email string) error {
	c.begin()
	if err := c.api.ForgotPassword(ctx, email); err != nil {
		return c.fail("forgotPassword", client.Message(err, forgotPasswordFallback), err)
	}
	return nil
}

// ResetPassword completes a reset flow with a token from email. Stateless;
// an expired token surfaces the server message verbatim and triggers no
// navigation.
func (c *Controller) ResetPassword(ctx context.Context, token, newPassword string) error {
	c.begin()
	if err := c.api.ResetPassword(ctx, token, newPassword); err != nil {
		return c.fail("resetPassword", client.Message(err, resetPasswordFallback), err)
	}
	return nil
}

// ChangePassword replaces the signed-in user's password.
func (c *Controller) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	c.begin()
	if err := c.api.ChangePassword(ctx, oldPassword, newPassword); err != nil {
		return c.fail("changePassword", client.Message(err, changePasswordFallback), err)
	}
	return nil
}

// UpdateProfile replaces the in-memory profile on success; on failure the
// profile is left untouched and the server message is surfaced.
func (c *Controller) UpdateProfile(ctx context.Context, profile *client.Profile) error {
	c.begin()
	resp, err := c.api.UpdateProfile(ctx, profile)
	if err != nil {
		return c.fail("updateProfile", client.Message(err, updateProfileFallback), err)
	}
	c.mu.Lock()
	c.profile = resp.Profile
	snap := c.snapshot()
	c.mu.Unlock()
	c.notify(snap)
	return nil
}

// UpdatePreferences replaces the preferences carried in the profile.
func (c *Controller) UpdatePreferences(ctx context.Context, preferences *client.Preferences) error {
	c.begin()
	resp, err := c.api.UpdatePreferences(ctx, preferences)
	if err != nil {
		return c.fail("updatePreferences", client.Message(err, preferencesFallback), err)
	}
	c.mu.Lock()
	if c.profile == nil {
		c.profile = &client.Profile{}
	}
	c.profile.Preferences = resp.Preferences
	snap := c.snapshot()
	c.mu.Unlock()
	c.notify(snap)
	return nil
}

// Invalidate is the authorization-failure handler wired into the transport:
// any authenticated call answered with 401 lands here. It clears the
// credential store exactly once per credential, resets in-memory state and
// leaves the session Anonymous; subscribers (the route guard's views)
// observe the change and return to the login entry point. A rejection for a
// token that is no longer the stored one is ignored, so concurrent failures
// cannot clear a session established in between.
func (c *Controller) Invalidate(failed *oauth2.Token) {
	c.mu.Lock()
	current, ok := c.credentials.Lookup()
	if !ok || (failed != nil && current.AccessToken != failed.AccessToken) {
		c.mu.Unlock()
		return
	}
	if err := c.credentials.Clear(); err != nil {
		c.logger.WithError(err).Warn("failed to clear credential store")
	}
	c.user = nil
	c.profile = nil
	c.state = StateAnonymous
	snap := c.snapshot()
	c.mu.Unlock()
	c.notify(snap)
	c.logger.Warn("session invalidated by authorization failure")
}

// establish persists the token pair and finalizes the session via the
// sequenced profile fetch; a caller observing Loading in between must wait
// for that fetch rather than racing on User.
func (c *Controller) establish(ctx context.Context, operation string, resp *client.AuthResponse, remember bool) error {
	token := &oauth2.Token{AccessToken: resp.Token, RefreshToken: resp.RefreshToken}
	if err := c.credentials.Set(token, remember); err != nil {
		return c.fail(operation, persistFallback, err)
	}
	c.mu.Lock()
	c.user = resp.User
	c.state = StateLoading
	snap := c.snapshot()
	c.mu.Unlock()
	c.notify(snap)

	c.resolveProfile(ctx)
	c.logger.WithFields(logrus.Fields{"operation": operation, "state": c.State().String()}).Info("session established")
	return nil
}

// resolveProfile finalizes the Authenticated/Anonymous determination. Any
// fetch failure, an invalid token included, clears the credential store.
func (c *Controller) resolveProfile(ctx context.Context) {
	resp, err := c.api.GetProfile(ctx)
	if err != nil {
		c.logger.WithError(err).Warn("profile fetch failed")
		if _, ok := c.credentials.Lookup(); ok {
			if clearErr := c.credentials.Clear(); clearErr != nil {
				c.logger.WithError(clearErr).Warn("failed to clear credential store")
			}
		}
		c.mu.Lock()
		c.user = nil
		c.profile = nil
		c.state = StateAnonymous
		snap := c.snapshot()
		c.mu.Unlock()
		c.notify(snap)
		return
	}
	c.mu.Lock()
	c.user = resp.User
	c.profile = resp.Profile
	c.state = StateAuthenticated
	snap := c.snapshot()
	c.mu.Unlock()
	c.notify(snap)
}

// begin clears the error of the previous operation.
func (c *Controller) begin() {
	c.mu.Lock()
	c.errMsg = ""
	if c.state == StateError {
		c.state = StateAnonymous
	}
	c.mu.Unlock()
}

// fail records an operation failure. The session only degrades to
// StateError when there is no authenticated session to keep rendering: a
// failed profile update must not eject a signed-in user, and an
// authorization failure already moved the session to Anonymous through
// Invalidate.
func (c *Controller) fail(operation, message string, cause error) error {
	c.mu.Lock()
	c.errMsg = message
	if c.state != StateAuthenticated && c.state != StateLoading && !client.IsUnauthorized(cause) {
		c.state = StateError
	}
	snap := c.snapshot()
	c.mu.Unlock()
	c.notify(snap)
	c.logger.WithFields(logrus.Fields{"operation": operation, "error": message}).Warn("operation failed")
	return &operationError{message: message, cause: cause}
}

func (c *Controller) transition(state State) {
	c.mu.Lock()
	c.state = state
	snap := c.snapshot()
	c.mu.Unlock()
	c.notify(snap)
}

// snapshot must be called with c.mu held.
func (c *Controller) snapshot() Snapshot {
	return Snapshot{State: c.state, User: c.user, Profile: c.profile, Err: c.errMsg}
}

func (c *Controller) notify(snap Snapshot) {
	c.mu.Lock()
	listeners := make([]func(Snapshot), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()
	for _, listener := range listeners {
		listener(snap)
	}
}

// operationError reports the user-facing message while preserving the
// underlying cause for errors.As / errors.Is.
type operationError struct {
	message string
	cause   error
}

func (e *operationError) Error() string { return e.message }
func (e *operationError) Unwrap() error { return e.cause }

// Package session holds the process-wide authentication state: the current
// user, if any, and the lifecycle around login, registration, logout and
// rehydration from a previously persisted token.
//
// The controller is an explicit, injectable value rather than a package
// singleton, so tests can construct independent instances and the CLI
// receives it by dependency injection.
package session

import (
	"context"
	"sync"

	"github.com/demobank/bankcli/internal/client/models"
	"github.com/demobank/bankcli/internal/client/services"
	"github.com/demobank/bankcli/internal/client/tokenstore"
	"github.com/demobank/bankcli/internal/logging"
)

// Status is the lifecycle phase of the session.
type Status string

const (
	StatusUninitialized Status = "uninitialized"
	StatusLoading       Status = "loading"
	StatusReady         Status = "ready"
)

// Controller is the authentication state machine. Lifecycle:
//
//	Uninitialized → Loading → Ready(user != nil | user == nil)
//
// Rehydration failures are swallowed: a stored token the server rejects
// means "no session", never an error surfaced to the caller. The controller
// guarantees that a non-nil user implies the token store holds a pair; the
// converse does not hold while rehydration is in flight.
type Controller struct {
	auth   services.AuthService
	tokens tokenstore.Store
	log    logging.Logger

	mu     sync.RWMutex
	status Status
	user   *models.User
}

func NewController(auth services.AuthService, tokens tokenstore.Store, log logging.Logger) *Controller {
	return &Controller{
		auth:   auth,
		tokens: tokens,
		log:    log,
		status: StatusUninitialized,
	}
}

// Status returns the current lifecycle phase.
func (c *Controller) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// CurrentUser returns the authenticated user, or nil. The returned snapshot
// must not be mutated; it is replaced wholesale on every re-sync.
func (c *Controller) CurrentUser() *models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user
}

// IsAuthenticated reports whether a user is present.
func (c *Controller) IsAuthenticated() bool {
	return c.CurrentUser() != nil
}

func (c *Controller) setUser(user *models.User, status Status) {
	c.mu.Lock()
	c.user = user
	c.status = status
	c.mu.Unlock()
}

// Load rehydrates the session from a persisted token. Callers must let it
// finish before consulting the controller for gating: the transition to
// Ready is the signal that session-dependent commands may run.
//
// Any failure on the way (store unreadable, token rejected, server down)
// degrades to an unauthenticated session: the stored pair is dropped so a
// stale token is never retained.
func (c *Controller) Load(ctx context.Context) {
	c.setUser(nil, StatusLoading)

	has, err := c.tokens.HasToken(ctx)
	if err != nil {
		c.log.Warn(ctx, "token store unreadable, starting unauthenticated", "error", err)
		c.setUser(nil, StatusReady)
		return
	}
	if !has {
		c.setUser(nil, StatusReady)
		return
	}

	user, err := c.auth.GetProfile(ctx)
	if err != nil {
		c.log.Warn(ctx, "session rehydration failed, clearing stored tokens", "error", err)
		if clearErr := c.tokens.Clear(ctx); clearErr != nil {
			c.log.Error(ctx, "failed to clear stored tokens", "error", clearErr)
		}
		c.setUser(nil, StatusReady)
		return
	}

	c.setUser(user, StatusReady)
}

// Login authenticates and then re-runs rehydration so the session always
// reflects the server-confirmed identity, never a locally assembled guess.
// Authentication failures propagate untouched.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	if _, err := c.auth.Login(ctx, username, password); err != nil {
		return err
	}
	c.Load(ctx)
	return nil
}

// Register creates the account and populates the session directly from the
// registration response; no extra profile round trip is needed.
func (c *Controller) Register(ctx context.Context, req models.RegisterRequest) error {
	user, err := c.auth.Register(ctx, req)
	if err != nil {
		return err
	}
	c.setUser(user, StatusReady)
	return nil
}

// Logout drops the stored pair and the in-memory user synchronously. It
// never fails and is safe to call repeatedly.
func (c *Controller) Logout(ctx context.Context) {
	if err := c.auth.Logout(ctx); err != nil {
		c.log.Error(ctx, "failed to clear stored tokens on logout", "error", err)
	}
	c.setUser(nil, StatusReady)
}

// Refresh re-fetches the profile and replaces the user wholesale, e.g. after
// a profile mutation. On failure the previous snapshot is kept and the error
// propagates.
func (c *Controller) Refresh(ctx context.Context) error {
	user, err := c.auth.GetProfile(ctx)
	if err != nil {
		return err
	}
	c.setUser(user, StatusReady)
	return nil
}

package service

import (
	"go.uber.org/zap"

	"github.com/divyam007142/Railway-reservation/internal/api"
	"github.com/divyam007142/Railway-reservation/internal/domain"
	"github.com/divyam007142/Railway-reservation/internal/logger"
	"github.com/divyam007142/Railway-reservation/internal/session"
)

// Guard gates every role-protected view and is the single owner of
// session teardown on authorization failure.
type Guard struct {
	store *session.Store
}

// NewGuard creates a Guard over the session store
func NewGuard(store *session.Store) *Guard {
	return &Guard{store: store}
}

// Require resolves the active session and checks its role claim against the
// view's required role. Absent session yields ErrNotAuthenticated, a role
// mismatch ErrWrongRole; either way the caller aborts rendering and
// redirects to the entry point.
func (g *Guard) Require(role domain.Role) (*session.Session, error) {
	sess := g.store.Current()
	if sess == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if sess.Identity.Role != role {
		return nil, domain.ErrWrongRole
	}
	return sess, nil
}

// HandleAPIError inspects a downstream API failure. A 401 clears the whole
// session atomically and reports true so the view redirects; any other
// error is left to the caller.
func (g *Guard) HandleAPIError(err error) bool {
	if err == nil || !api.IsUnauthorized(err) {
		return false
	}
	logger.Warn("authorization failure, clearing session", zap.Error(err))
	g.store.Clear()
	return true
}

// Logout clears the session synchronously. It never calls the server.
func (g *Guard) Logout() {
	g.store.Clear()
}

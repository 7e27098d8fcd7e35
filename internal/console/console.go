package console

import (
	"context"

	"github.com/divyam007142/Railway-reservation/internal/api"
	"github.com/divyam007142/Railway-reservation/internal/domain"
	"github.com/divyam007142/Railway-reservation/internal/service"
	"github.com/divyam007142/Railway-reservation/internal/session"
)

// Console is the interactive front end. It routes between the entry screen
// and the role-gated dashboards, with the guard deciding access.
type Console struct {
	client *api.Client
	store  *session.Store
	guard  *service.Guard
	term   *Terminal

	quit bool
}

// New creates a Console
func New(client *api.Client, store *session.Store, term *Terminal) *Console {
	return &Console{
		client: client,
		store:  store,
		guard:  service.NewGuard(store),
		term:   term,
	}
}

// Run drives the session loop until the user quits. A persisted session
// routes straight to the matching dashboard; anything else lands on the
// entry screen.
func (c *Console) Run(ctx context.Context) error {
	for !c.quit {
		if c.term.EOF() {
			return nil
		}

		sess := c.store.Current()
		if sess == nil {
			c.entryScreen(ctx)
			continue
		}

		switch sess.Identity.Role {
		case domain.RoleAdmin:
			c.adminDashboard(ctx)
		case domain.RolePassenger:
			c.passengerDashboard(ctx)
		default:
			// Unknown role claim: treat as unauthorized.
			c.guard.Logout()
		}
	}
	return nil
}

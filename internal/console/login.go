package console

import (
	"context"

	"github.com/divyam007142/Railway-reservation/internal/api"
	"github.com/divyam007142/Railway-reservation/internal/dto"
)

// entryScreen is the unauthenticated landing view: login, register, public
// PNR lookup, or quit.
func (c *Console) entryScreen(ctx context.Context) {
	c.term.Printf("")
	c.term.Printf("=== Railway Reservation ===")
	c.term.Printf("  1) Login")
	c.term.Printf("  2) Register")
	c.term.Printf("  3) PNR status")
	c.term.Printf("  q) Quit")

	switch c.term.Prompt("Select") {
	case "1":
		c.login(ctx)
	case "2":
		c.register(ctx)
	case "3":
		c.lookupPNR(ctx)
	case "q", "Q":
		c.quit = true
	}
}

func (c *Console) login(ctx context.Context) {
	req := &dto.LoginRequest{
		Username: c.term.Prompt("Username"),
		Password: c.term.Prompt("Password"),
	}

	resp, err := c.client.Login(ctx, req)
	if err != nil {
		c.term.Failure("%s", api.Detail(err, "Login failed"))
		return
	}

	if err := c.store.Save(resp.AccessToken, resp.User); err != nil {
		c.term.Failure("Could not persist session: %v", err)
		return
	}
	c.term.Success("Welcome back, %s!", resp.User.FullName)
}

func (c *Console) register(ctx context.Context) {
	req := &dto.RegisterRequest{
		Username: c.term.Prompt("Username"),
		FullName: c.term.Prompt("Full name"),
		Email:    c.term.Prompt("Email"),
		Phone:    c.term.Prompt("Phone"),
	}
	req.Password = c.term.Prompt("Password")
	req.ConfirmPassword = c.term.Prompt("Confirm password")

	// Validation failures never reach the network.
	if ok, msg := req.Validate(); !ok {
		c.term.Failure("%s", msg)
		return
	}

	if err := c.client.Register(ctx, req); err != nil {
		c.term.Failure("%s", api.Detail(err, "Registration failed"))
		return
	}
	c.term.Success("Registration successful! Please login.")
}

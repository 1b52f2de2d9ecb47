package cli

import (
	"context"

	"github.com/iudanet/bloodlink/internal/client/session"
)

func (c *Cli) runLogout(ctx context.Context) error {
	if c.session.State() != session.StateAuthenticated {
		c.io.Println("You are not logged in.")
		return nil
	}

	// Токен удаляется локально; на сервере отзывать нечего
	c.session.SignOut(ctx)

	c.io.Println("✓ Logged out.")
	return nil
}

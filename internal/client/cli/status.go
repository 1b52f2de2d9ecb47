package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/bloodlink/internal/client/session"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	if c.session.State() != session.StateAuthenticated {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'bloodlink login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")

	// Профиль подтверждает, что токен еще действителен на сервере
	profile, err := c.apiClient.GetProfile(ctx)
	if err != nil {
		// Сессия могла протухнуть; expiry handler уже отработал внутри клиента
		return fmt.Errorf("failed to verify session: %w", err)
	}

	c.io.Println()
	c.io.Printf("Name:        %s\n", profile.Name)
	c.io.Printf("Email:       %s\n", profile.Email)
	c.io.Printf("Blood group: %s\n", profile.BloodGroup)

	return nil
}

package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.getPassword("Password: ")
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	// 1. Обмениваем учетные данные на токен
	token, err := c.authService.Login(ctx, email, password)
	if err != nil {
		return err
	}

	// 2. Сохраняем токен и переводим сессию в Authenticated
	if err := c.session.SignIn(ctx, token); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Println("Your session has been saved securely.")

	return nil
}

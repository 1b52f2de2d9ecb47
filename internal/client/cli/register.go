package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/bloodlink/internal/client/auth"
	"github.com/iudanet/bloodlink/internal/validation"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Donor Registration ===")
	c.io.Println()

	name, err := c.io.ReadInput("Full name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	bloodGroup, err := c.io.ReadInput(fmt.Sprintf("Blood group (%s): ", strings.Join(validation.BloodGroups, ", ")))
	if err != nil {
		return fmt.Errorf("failed to read blood group: %w", err)
	}

	phone, err := c.io.ReadInput("Phone: ")
	if err != nil {
		return fmt.Errorf("failed to read phone: %w", err)
	}

	city, err := c.io.ReadInput("City: ")
	if err != nil {
		return fmt.Errorf("failed to read city: %w", err)
	}

	password, err := c.getPassword(fmt.Sprintf("Password (min %d chars): ", validation.MinPasswordLen))
	if err != nil {
		return err
	}

	// Подтверждение запрашиваем только при интерактивном вводе
	if c.passwords.FromFile == "" && !passwordFromEnv() {
		confirm, err := c.io.ReadPassword("Confirm password: ")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}
	}

	c.io.Println()
	c.io.Println("Registering donor...")

	err = c.authService.Register(ctx, auth.RegisterInput{
		Name:       name,
		Email:      email,
		Password:   password,
		BloodGroup: strings.ToUpper(strings.TrimSpace(bloodGroup)),
		Phone:      phone,
		City:       city,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Println()
	c.io.Println("Please run 'bloodlink login' to start using the service.")

	return nil
}

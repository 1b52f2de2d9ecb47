package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/bloodlink/pkg/api"
)

func (c *Cli) runProfile(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	c.io.Println("=== Donor Profile ===")
	c.io.Println()

	profile, err := c.apiClient.GetProfile(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	c.io.Printf("Name:        %s\n", profile.Name)
	c.io.Printf("Email:       %s\n", profile.Email)
	c.io.Printf("Blood group: %s\n", profile.BloodGroup)
	if profile.Phone != "" {
		c.io.Printf("Phone:       %s\n", profile.Phone)
	}
	if profile.City != "" {
		c.io.Printf("City:        %s\n", profile.City)
	}

	// Счетчик донаций берется из истории
	donations, err := c.apiClient.GetHistory(ctx)
	if err != nil {
		c.io.Printf("\nWarning: failed to fetch donation history: %v\n", err)
		return nil
	}
	c.io.Println()
	c.io.Printf("Donations:   %d\n", len(donations))

	return nil
}

func (c *Cli) runUpdateProfile(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	c.io.Println("=== Update Profile ===")
	c.io.Println()

	// Текущие значения показываем как подсказку
	profile, err := c.apiClient.GetProfile(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	phone, err := c.io.ReadInput(fmt.Sprintf("Phone [%s]: ", profile.Phone))
	if err != nil {
		return fmt.Errorf("failed to read phone: %w", err)
	}
	if phone == "" {
		phone = profile.Phone
	}

	city, err := c.io.ReadInput(fmt.Sprintf("City [%s]: ", profile.City))
	if err != nil {
		return fmt.Errorf("failed to read city: %w", err)
	}
	if city == "" {
		city = profile.City
	}

	// Группа крови неизменяема и в запрос не входит
	err = c.apiClient.UpdateProfile(ctx, api.UpdateProfileRequest{
		Phone: phone,
		City:  city,
	})
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Profile updated.")

	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/bloodlink/pkg/api"
)

func (c *Cli) runFeed(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	c.io.Println("=== Emergency Requests ===")
	c.io.Println()

	requests, err := c.feedService.Refresh(ctx)
	if err != nil {
		// Показываем устаревший список, если он есть
		if len(requests) == 0 {
			return err
		}
		c.io.Printf("Warning: refresh failed (%v), showing last known list\n", err)
		c.io.Println()
	}

	c.printRequests(requests)
	return nil
}

func (c *Cli) printRequests(requests []api.EmergencyRequest) {
	if len(requests) == 0 {
		c.io.Printf("No emergency requests for blood group %s right now.\n", c.feedService.BloodGroup())
		return
	}

	c.io.Printf("Found %d request(s) for blood group %s:\n", len(requests), c.feedService.BloodGroup())
	c.io.Println()

	for i, req := range requests {
		c.io.Printf("%d. %s\n", i+1, req.DisplayHospitalName())
		c.io.Printf("   ID:       %s\n", req.ID)
		c.io.Printf("   Location: %s\n", req.DisplayLocation())
		if req.UnitsRequired > 0 {
			c.io.Printf("   Units:    %d\n", req.UnitsRequired)
		}
		if req.Reason != "" {
			c.io.Printf("   Reason:   %s\n", req.Reason)
		}
		if req.IsResponded() {
			c.io.Println("   ✓ You have responded to this request")
		}
		c.io.Println()
	}

	c.io.Println("Use 'bloodlink respond <id>' to respond to a request.")
}

func (c *Cli) runRespond(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing request id. Usage: bloodlink respond <id>")
	}
	requestID := args[0]

	if err := c.requireAuth(); err != nil {
		return err
	}

	// Отклик раскрывает контакты донора госпиталю, поэтому требуем
	// явного подтверждения до отправки
	ok, err := c.io.Confirm("Responding will share your contact details with the hospital. Continue?")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		c.io.Println("Cancelled.")
		return nil
	}

	c.io.Println("Sending response...")

	requests, err := c.feedService.Respond(ctx, requestID)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Response sent! The hospital will contact you.")
	c.io.Println()
	c.printRequests(requests)

	return nil
}

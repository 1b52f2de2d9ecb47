package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/bloodlink/pkg/api"
)

func (c *Cli) runHistory(ctx context.Context, args []string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	query := strings.Join(args, " ")

	c.io.Println("=== Donation History ===")
	c.io.Println()

	donations, err := c.apiClient.GetHistory(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch donation history: %w", err)
	}

	filtered := filterDonations(donations, query)

	if len(filtered) == 0 {
		if query != "" {
			c.io.Printf("No donations matching %q.\n", query)
		} else {
			c.io.Println("No donations yet.")
			c.io.Println()
			c.io.Println("Respond to an emergency request to make your first donation.")
		}
		return nil
	}

	c.io.Printf("Found %d donation(s):\n", len(filtered))
	c.io.Println()

	totalUnits := 0
	for i, d := range filtered {
		c.io.Printf("%d. %s\n", i+1, d.DisplayHospitalName())
		if d.CompletedAt != "" {
			c.io.Printf("   Date:  %s\n", d.CompletedAt)
		}
		c.io.Printf("   Units: %d\n", d.Units())
		c.io.Println()
		totalUnits += d.Units()
	}

	c.io.Printf("Total: %d donation(s), %d unit(s)\n", len(filtered), totalUnits)

	return nil
}

// filterDonations оставляет донации с именем госпиталя, содержащим запрос
func filterDonations(donations []api.Donation, query string) []api.Donation {
	if query == "" {
		return donations
	}
	filtered := make([]api.Donation, 0, len(donations))
	for _, d := range donations {
		if matchesQuery(d.DisplayHospitalName(), query) {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

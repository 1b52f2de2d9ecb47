package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/bloodlink/pkg/api"
)

func (c *Cli) runHospitals(ctx context.Context, args []string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	query := strings.Join(args, " ")

	c.io.Println("=== Partner Hospitals ===")
	c.io.Println()

	hospitals, err := c.apiClient.GetHospitals(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch hospitals: %w", err)
	}

	// Фильтрация по имени и городу выполняется на клиенте
	filtered := filterHospitals(hospitals, query)

	if len(filtered) == 0 {
		if query != "" {
			c.io.Printf("No hospitals matching %q.\n", query)
		} else {
			c.io.Println("No hospitals found.")
		}
		return nil
	}

	c.io.Printf("Found %d hospital(s):\n", len(filtered))
	c.io.Println()

	for i, h := range filtered {
		c.io.Printf("%d. %s\n", i+1, h.HospitalName)
		if h.City != "" {
			c.io.Printf("   City:    %s\n", h.City)
		}
		if h.Address != "" {
			c.io.Printf("   Address: %s\n", h.Address)
		}
		if phone := h.DisplayContactNumber(); phone != "" {
			// Рядом с номером печатаем его набираемую форму, если они различаются
			if dial := h.DialNumber(); dial != "" && dial != phone {
				c.io.Printf("   Phone:   %s (dial: %s)\n", phone, dial)
			} else {
				c.io.Printf("   Phone:   %s\n", phone)
			}
		}
		if h.Email != "" {
			c.io.Printf("   Email:   %s\n", h.Email)
		}
		if mapsURL := h.MapsURL(); mapsURL != "" {
			c.io.Printf("   Map:     %s\n", mapsURL)
		}
		c.io.Println()
	}

	return nil
}

// filterHospitals оставляет госпитали, у которых имя или город
// содержат запрос (без учета регистра). Пустой запрос возвращает все.
func filterHospitals(hospitals []api.Hospital, query string) []api.Hospital {
	if query == "" {
		return hospitals
	}
	filtered := make([]api.Hospital, 0, len(hospitals))
	for _, h := range hospitals {
		if matchesQuery(h.HospitalName, query) || matchesQuery(h.City, query) {
			filtered = append(filtered, h)
		}
	}
	return filtered
}

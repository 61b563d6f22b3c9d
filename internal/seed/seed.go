package seed

import (
	"context"
	"fmt"

	"pos-console/internal/backend"
)

// Apply pushes basic demo data through the data service API for
// manual testing. The service assigns the identifiers, so repeated
// runs create duplicates; meant for fresh demo environments.
func Apply(ctx context.Context, client *backend.Client, token string) error {
	customers := []backend.CustomerInput{
		{Name: "Jane Mwangi", Email: "jane@example.com", Phone: "+254700000001"},
		{Name: "Peter Otieno", Email: "peter@example.com", Phone: "+254700000002"},
	}

	products := []backend.ProductInput{
		{Name: "Rice 1kg", PriceCents: 1000, Stock: 20, Category: "Grains"},
		{Name: "Cooking Oil 500ml", PriceCents: 350, Stock: 40, Category: "Pantry"},
		{Name: "Sugar 2kg", PriceCents: 520, Stock: 15, Category: "Pantry"},
	}

	for _, c := range customers {
		if err := client.CreateCustomer(ctx, token, c); err != nil {
			return fmt.Errorf("create customer %s: %w", c.Name, err)
		}
	}
	for _, p := range products {
		if err := client.CreateProduct(ctx, token, p); err != nil {
			return fmt.Errorf("create product %s: %w", p.Name, err)
		}
	}

	return nil
}

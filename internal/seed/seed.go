package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Category   string
	Name       string
	PriceCents int64
	ImageURL   string
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{Category: "Apparel", Name: "Plain T-Shirt", PriceCents: 1999, ImageURL: "/images/tshirt.jpg"},
		{Category: "Apparel", Name: "Hooded Sweatshirt", PriceCents: 4599, ImageURL: "/images/hoodie.jpg"},
		{Category: "Kitchen", Name: "Ceramic Mug", PriceCents: 1299, ImageURL: "/images/mug.jpg"},
		{Category: "Kitchen", Name: "French Press", PriceCents: 3499, ImageURL: "/images/press.jpg"},
	}

	for _, p := range products {
		categoryID, err := ensureCategory(ctx, pool, p.Category)
		if err != nil {
			return fmt.Errorf("ensure category %s: %w", p.Category, err)
		}
		if err := upsertProduct(ctx, pool, categoryID, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	if err := ensureCustomer(ctx, pool, "Demo Customer", "+10000000000", "1 Demo Street"); err != nil {
		return fmt.Errorf("ensure customer: %w", err)
	}

	return nil
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, name string) (string, error) {
	const q = `
INSERT INTO categories (name)
VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, name).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, categoryID string, p productSeed) error {
	const q = `
INSERT INTO products (category_id, name, price_cents, image_url)
SELECT $1, $2, $3, $4
WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $2)
`
	_, err := pool.Exec(ctx, q, categoryID, p.Name, p.PriceCents, p.ImageURL)
	return err
}

func ensureCustomer(ctx context.Context, pool *pgxpool.Pool, name, phone, address string) error {
	const q = `
INSERT INTO customers (name, phone, address)
VALUES ($1, $2, $3)
ON CONFLICT (phone) DO NOTHING
`
	_, err := pool.Exec(ctx, q, name, phone, address)
	return err
}

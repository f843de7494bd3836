package product

import (
	"context"
	"errors"
	"os"
	"testing"

	"storefront/internal/domain"
	"storefront/internal/migrate"

	"github.com/jackc/pgx/v5/pgxpool"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE outbox, tokens, order_details, orders, cart_lines, products, categories, customers RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
	return pool
}

func insertProduct(ctx context.Context, t *testing.T, pool *pgxpool.Pool, category, name string, priceCents int64) string {
	t.Helper()
	var categoryID string
	err := pool.QueryRow(ctx, `
INSERT INTO categories (name) VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text`, category).Scan(&categoryID)
	if err != nil {
		t.Fatalf("insert category: %v", err)
	}
	var id string
	err = pool.QueryRow(ctx, `
INSERT INTO products (category_id, name, price_cents) VALUES ($1, $2, $3) RETURNING id::text`,
		categoryID, name, priceCents).Scan(&id)
	if err != nil {
		t.Fatalf("insert product: %v", err)
	}
	return id
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	id := insertProduct(ctx, t, pool, "Kitchen", "Mug", 1299)

	repo := NewPostgres(pool, nil)
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if p.Name != "Mug" || p.PriceCents != 1299 {
		t.Fatalf("unexpected product %+v", p)
	}

	if _, err := repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetByID_MalformedID(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool, nil)
	if _, err := repo.GetByID(ctx, "not-a-uuid"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestList_Filters(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	mugID := insertProduct(ctx, t, pool, "Kitchen", "Ceramic Mug", 1299)
	insertProduct(ctx, t, pool, "Apparel", "Plain T-Shirt", 1999)

	repo := NewPostgres(pool, nil)

	all, err := repo.List(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 products, got %d", len(all))
	}

	byName, err := repo.List(ctx, ListFilter{Search: "mug"})
	if err != nil {
		t.Fatalf("List search: %v", err)
	}
	if len(byName) != 1 || byName[0].ID != mugID {
		t.Fatalf("unexpected search result %+v", byName)
	}
}

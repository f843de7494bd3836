package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"storefront/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context, filter ListFilter) ([]domain.Product, error) {
	const q = `
SELECT id::text, category_id::text, name, price_cents, image_url, created_at
FROM products
WHERE ($1 = '' OR category_id::text = $1)
  AND ($2 = '' OR name ILIKE '%' || $2 || '%')
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, filter.CategoryID, filter.Search)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.PriceCents, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT id::text, category_id::text, name, price_cents, image_url, created_at
FROM products
WHERE id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.CategoryID, &p.Name, &p.PriceCents, &p.ImageURL, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "22P02" {
			return nil, fmt.Errorf("%w: malformed product id", domain.ErrValidation)
		}
		return nil, err
	}
	return &p, nil
}

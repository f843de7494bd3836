package customer

import (
	"context"
	"errors"

	"storefront/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Customer, error) {
	const q = `
INSERT INTO customers (name, phone, address)
VALUES ($1, $2, $3)
RETURNING id::text, name, phone, address, created_at
`
	var c domain.Customer
	err := r.pool.QueryRow(ctx, q, in.Name, in.Phone, in.Address).Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	const q = `
SELECT id::text, name, phone, address, created_at
FROM customers
WHERE id = $1
`
	return r.fetchOne(ctx, q, id)
}

func (r *postgresRepo) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	const q = `
SELECT id::text, name, phone, address, created_at
FROM customers
WHERE phone = $1
`
	return r.fetchOne(ctx, q, phone)
}

func (r *postgresRepo) fetchOne(ctx context.Context, q string, arg any) (*domain.Customer, error) {
	var c domain.Customer
	err := r.pool.QueryRow(ctx, q, arg).Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

package cart

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

func malformedLineID(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "22P02" {
		return fmt.Errorf("%w: malformed line id", domain.ErrValidation)
	}
	return err
}

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) AddItem(ctx context.Context, in AddItemInput) (*domain.CartLine, error) {
	// unit_price_cents is deliberately absent from the DO UPDATE list: the
	// price is snapshotted when the line is first created. The upsert also
	// makes the merge atomic under concurrent adds for the same key.
	const q = `
INSERT INTO cart_lines (customer_id, product_id, quantity, unit_price_cents)
VALUES ($1, $2, $3, $4)
ON CONFLICT (customer_id, product_id)
DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity
RETURNING id::text, customer_id::text, product_id::text, quantity, unit_price_cents, created_at
`
	var line domain.CartLine
	if err := r.pool.QueryRow(ctx, q, in.CustomerID, in.ProductID, in.Quantity, in.UnitPriceCents).Scan(
		&line.ID,
		&line.CustomerID,
		&line.ProductID,
		&line.Quantity,
		&line.UnitPriceCents,
		&line.CreatedAt,
	); err != nil {
		return nil, err
	}
	line.TotalCents = line.UnitPriceCents * int64(line.Quantity)
	return &line, nil
}

func (r *postgresRepo) ChangeQuantity(ctx context.Context, customerID, lineID string, quantity int) error {
	if quantity <= 0 {
		cmd, err := r.pool.Exec(ctx, `
DELETE FROM cart_lines
WHERE id = $1 AND customer_id = $2
`, lineID, customerID)
		if err != nil {
			return malformedLineID(err)
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	}

	cmd, err := r.pool.Exec(ctx, `
UPDATE cart_lines
SET quantity = $1
WHERE id = $2 AND customer_id = $3
`, quantity, lineID, customerID)
	if err != nil {
		return malformedLineID(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Remove(ctx context.Context, customerID, lineID string) error {
	_, err := r.pool.Exec(ctx, `
DELETE FROM cart_lines
WHERE id = $1 AND customer_id = $2
`, lineID, customerID)
	if err != nil {
		return malformedLineID(err)
	}
	return nil
}

func (r *postgresRepo) GetByCustomer(ctx context.Context, customerID string) (*domain.Cart, error) {
	const q = `
SELECT id::text, customer_id::text, product_id::text, quantity, unit_price_cents, created_at
FROM cart_lines
WHERE customer_id = $1
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cart := domain.Cart{CustomerID: customerID}
	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(
			&line.ID,
			&line.CustomerID,
			&line.ProductID,
			&line.Quantity,
			&line.UnitPriceCents,
			&line.CreatedAt,
		); err != nil {
			return nil, err
		}
		line.TotalCents = line.UnitPriceCents * int64(line.Quantity)
		cart.TotalCents += line.TotalCents
		cart.Lines = append(cart.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *postgresRepo) Clear(ctx context.Context, customerID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_lines WHERE customer_id = $1`, customerID)
	return err
}

package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"storefront/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// invalid_text_representation: the id did not parse as a uuid.
func isMalformedID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}

type postgresRepo struct {
	pool   *pgxpool.Pool
	topic  string
	logger *log.Logger
}

// NewPostgres builds the order ledger. topic is the outbox topic order-placed
// events are recorded under.
func NewPostgres(pool *pgxpool.Pool, topic string, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, topic: topic, logger: logger}
}

type orderPlacedEvent struct {
	EventID    string    `json:"eventId"`
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId"`
	TotalCents int64     `json:"totalCents"`
	PlacedAt   time.Time `json:"placedAt"`
}

func (r *postgresRepo) CreateFromCart(ctx context.Context, customerID, idempotencyKey string) (*domain.Order, error) {
	if idempotencyKey != "" {
		existing, err := r.getByIdempotencyKey(ctx, customerID, idempotencyKey)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// FOR UPDATE locks the lines being billed. Mutations of those lines wait
	// for the checkout; a concurrent add of a new product is untouched, its
	// line stays in the cart because the clear below removes locked ids only.
	rows, err := tx.Query(ctx, `
SELECT id::text, product_id::text, quantity, unit_price_cents
FROM cart_lines
WHERE customer_id = $1
ORDER BY created_at ASC
FOR UPDATE
`, customerID)
	if err != nil {
		return nil, err
	}

	type cartLine struct {
		ID             string
		ProductID      string
		Quantity       int
		UnitPriceCents int64
	}
	var lines []cartLine
	for rows.Next() {
		var l cartLine
		if err := rows.Scan(&l.ID, &l.ProductID, &l.Quantity, &l.UnitPriceCents); err != nil {
			rows.Close()
			return nil, err
		}
		lines = append(lines, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		// A concurrent replay with the same key may have placed the order and
		// emptied the cart while we waited on the row locks.
		if idempotencyKey != "" {
			if existing, err := r.getByIdempotencyKey(ctx, customerID, idempotencyKey); err == nil {
				return existing, nil
			}
		}
		return nil, domain.ErrEmptyCart
	}

	var totalCents int64
	lineIDs := make([]string, 0, len(lines))
	for _, l := range lines {
		totalCents += l.UnitPriceCents * int64(l.Quantity)
		lineIDs = append(lineIDs, l.ID)
	}

	ord := domain.Order{CustomerID: customerID, TotalCents: totalCents}
	if err := tx.QueryRow(ctx, `
INSERT INTO orders (customer_id, total_cents, idempotency_key)
VALUES ($1, $2, NULLIF($3, ''))
RETURNING id::text, placed_at
`, customerID, totalCents, idempotencyKey).Scan(&ord.ID, &ord.PlacedAt); err != nil {
		return nil, err
	}

	for _, l := range lines {
		var detail domain.OrderDetail
		if err := tx.QueryRow(ctx, `
INSERT INTO order_details (order_id, product_id, quantity, unit_price_cents)
VALUES ($1, $2, $3, $4)
RETURNING id
`, ord.ID, l.ProductID, l.Quantity, l.UnitPriceCents).Scan(&detail.ID); err != nil {
			return nil, err
		}
		detail.OrderID = ord.ID
		detail.ProductID = l.ProductID
		detail.Quantity = l.Quantity
		detail.UnitPriceCents = l.UnitPriceCents
		ord.Details = append(ord.Details, detail)
	}

	event := orderPlacedEvent{
		EventID:    uuid.NewString(),
		OrderID:    ord.ID,
		CustomerID: customerID,
		TotalCents: totalCents,
		PlacedAt:   ord.PlacedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx, `
INSERT INTO outbox (event_id, topic, key, payload)
VALUES ($1, $2, $3, $4)
`, event.EventID, r.topic, ord.ID, payload); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_lines WHERE id = ANY($1::uuid[])`, lineIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	r.logger.Printf("order repo: placed order_id=%s customer_id=%s total_cents=%d lines=%d",
		ord.ID, customerID, totalCents, len(ord.Details))
	return &ord, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	const q = `
SELECT id::text, customer_id::text, total_cents, placed_at
FROM orders
WHERE id = $1
`
	var ord domain.Order
	err := r.pool.QueryRow(ctx, q, orderID).Scan(&ord.ID, &ord.CustomerID, &ord.TotalCents, &ord.PlacedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if isMalformedID(err) {
			return nil, fmt.Errorf("%w: malformed order id", domain.ErrValidation)
		}
		return nil, err
	}

	details, err := r.fetchDetails(ctx, ord.ID)
	if err != nil {
		return nil, err
	}
	ord.Details = details
	return &ord, nil
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	const q = `
SELECT id::text, customer_id::text, total_cents, placed_at
FROM orders
WHERE customer_id = $1
ORDER BY placed_at DESC
`
	rows, err := r.pool.Query(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var ord domain.Order
		if err := rows.Scan(&ord.ID, &ord.CustomerID, &ord.TotalCents, &ord.PlacedAt); err != nil {
			return nil, err
		}
		orders = append(orders, ord)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		details, err := r.fetchDetails(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Details = details
	}
	return orders, nil
}

func (r *postgresRepo) getByIdempotencyKey(ctx context.Context, customerID, key string) (*domain.Order, error) {
	const q = `
SELECT id::text
FROM orders
WHERE customer_id = $1 AND idempotency_key = $2
`
	var orderID string
	if err := r.pool.QueryRow(ctx, q, customerID, key).Scan(&orderID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return r.GetByID(ctx, orderID)
}

func (r *postgresRepo) fetchDetails(ctx context.Context, orderID string) ([]domain.OrderDetail, error) {
	const q = `
SELECT id, order_id::text, product_id::text, quantity, unit_price_cents
FROM order_details
WHERE order_id = $1
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []domain.OrderDetail
	for rows.Next() {
		var d domain.OrderDetail
		if err := rows.Scan(&d.ID, &d.OrderID, &d.ProductID, &d.Quantity, &d.UnitPriceCents); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}

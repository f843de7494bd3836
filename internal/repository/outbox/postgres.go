package outbox

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) FetchPending(ctx context.Context, limit int) ([]Record, error) {
	const q = `
SELECT id, event_id::text, topic, key, payload, created_at, sent_at
FROM outbox
WHERE sent_at IS NULL
ORDER BY id ASC
LIMIT $1
`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.EventID, &rec.Topic, &rec.Key, &rec.Payload, &rec.CreatedAt, &rec.SentAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) MarkSent(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE outbox SET sent_at = now() WHERE id = $1`, id)
	return err
}

package outbox

import (
	"context"
	"encoding/json"
	"time"
)

// Record is one pending or sent event row. Rows are written transactionally
// by the order ledger during checkout; the relay drains them.
type Record struct {
	ID        int64
	EventID   string
	Topic     string
	Key       string
	Payload   json.RawMessage
	CreatedAt time.Time
	SentAt    *time.Time
}

type Repository interface {
	FetchPending(ctx context.Context, limit int) ([]Record, error)
	MarkSent(ctx context.Context, id int64) error
}

package relay

import (
	"context"
	"io"
	"log"
	"time"

	outboxrepo "storefront/internal/repository/outbox"

	"github.com/segmentio/kafka-go"
)

const fetchBatch = 100

// Publisher sends one outbox record to the broker.
type Publisher interface {
	Publish(ctx context.Context, rec outboxrepo.Record) error
}

// Relay drains the outbox and publishes order-placed events. Checkout never
// waits on it; a record stays pending until publish and mark-sent both
// succeed, so delivery is at-least-once.
type Relay struct {
	repo      outboxrepo.Repository
	publisher Publisher
	interval  time.Duration
	logger    *log.Logger
}

func New(repo outboxrepo.Repository, publisher Publisher, interval time.Duration, logger *log.Logger) *Relay {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Relay{repo: repo, publisher: publisher, interval: interval, logger: logger}
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.Drain(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Drain publishes all currently pending records once.
func (r *Relay) Drain(ctx context.Context) {
	records, err := r.repo.FetchPending(ctx, fetchBatch)
	if err != nil {
		r.logger.Printf("relay: fetch pending: %v", err)
		return
	}

	for _, rec := range records {
		if err := r.publisher.Publish(ctx, rec); err != nil {
			r.logger.Printf("relay: publish event_id=%s: %v", rec.EventID, err)
			continue
		}
		if err := r.repo.MarkSent(ctx, rec.ID); err != nil {
			r.logger.Printf("relay: mark sent id=%d: %v", rec.ID, err)
			continue
		}
	}
}

// KafkaPublisher publishes outbox records to Kafka.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, rec outboxrepo.Record) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(rec.Key),
		Value: rec.Payload,
		Time:  rec.CreatedAt,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(rec.EventID)},
		},
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

const relayBatchSize = 100

// Relay drains the postgres outbox into Kafka. One instance runs per
// process; duplicate publishes across restarts are possible and fine, the
// audit consumer deduplicates on event ID.
type Relay struct {
	store    *PostgresStore
	producer Producer
	logger   *slog.Logger
	interval time.Duration
}

func NewRelay(store *PostgresStore, producer Producer, logger *slog.Logger, interval time.Duration) *Relay {
	return &Relay{
		store:    store,
		producer: producer,
		logger:   logger,
		interval: interval,
	}
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.drainOnce(ctx); err != nil {
				// Broker or DB hiccups should not kill the process; the
				// outbox holds the events until the next tick.
				r.logger.WarnContext(ctx, "audit relay drain failed", "error", err)
			}
		}
	}
}

func (r *Relay) drainOnce(ctx context.Context) error {
	rows, err := r.store.unpublished(ctx, relayBatchSize)
	if err != nil {
		return err
	}
	for _, row := range rows {
		key := relayKey(row.Payload)
		if err := r.producer.Produce(ctx, key, row.Payload); err != nil {
			return err
		}
		if err := r.store.markPublished(ctx, row.ID); err != nil {
			return err
		}
	}
	return nil
}

// relayKey partitions by certificate number so one certificate's trail stays
// ordered.
func relayKey(payload []byte) string {
	var partial struct {
		CertificateNumber string `json:"certificate_number"`
		Action            string `json:"action"`
	}
	if err := json.Unmarshal(payload, &partial); err != nil {
		return ""
	}
	if partial.CertificateNumber != "" {
		return partial.CertificateNumber
	}
	return partial.Action
}

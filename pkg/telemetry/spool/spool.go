package spool

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nimbushq/nimbus/pkg/telemetry"
	"gorm.io/gorm"
)

// Spool is a database-backed telemetry queue. It implements
// telemetry.Reporter, so the event store can flush into it exactly
// like it would into the network endpoint.
type Spool struct {
	db *gorm.DB
}

// New creates a spool on an already configured GORM connection and
// migrates the schema.
func New(db *gorm.DB) (*Spool, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}

	if err := db.AutoMigrate(&EventRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &Spool{db: db}, nil
}

// Report appends the batch under a fresh batch id, preserving event
// order. It satisfies telemetry.Reporter.
func (s *Spool) Report(ctx context.Context, events []telemetry.Event) error {
	if len(events) == 0 {
		return nil
	}

	batchID := uuid.New().String()
	records := make([]EventRecord, len(events))
	for i, ev := range events {
		records[i] = EventRecord{
			BatchID:  batchID,
			Position: i,
			Kind:     string(ev.Kind),
			Key:      ev.Key,
			Value:    ev.Value,
		}
	}

	if err := s.db.WithContext(ctx).Create(&records).Error; err != nil {
		return fmt.Errorf("failed to spool telemetry batch: %w", err)
	}
	return nil
}

// Pending returns all spooled events in batch order, oldest first.
func (s *Spool) Pending(ctx context.Context) ([]EventRecord, error) {
	var records []EventRecord
	err := s.db.WithContext(ctx).
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read spooled events: %w", err)
	}
	return records, nil
}

// Purge removes all events of the given batch, typically after a
// successful drain to the network endpoint.
func (s *Spool) Purge(ctx context.Context, batchID string) error {
	err := s.db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Delete(&EventRecord{}).Error
	if err != nil {
		return fmt.Errorf("failed to purge batch: %w", err)
	}
	return nil
}

// Drain forwards every spooled batch to the given reporter, purging
// batches that deliver successfully. Delivery failures stop the drain
// and leave the remaining batches queued; the error is for logging
// only, in line with best-effort telemetry.
func (s *Spool) Drain(ctx context.Context, reporter telemetry.Reporter) error {
	records, err := s.Pending(ctx)
	if err != nil {
		return err
	}

	// Group into batches preserving insertion order.
	var order []string
	batches := make(map[string][]telemetry.Event)
	for _, rec := range records {
		if _, ok := batches[rec.BatchID]; !ok {
			order = append(order, rec.BatchID)
		}
		batches[rec.BatchID] = append(batches[rec.BatchID], rec.ToEvent())
	}

	for _, batchID := range order {
		if err := reporter.Report(ctx, batches[batchID]); err != nil {
			return fmt.Errorf("failed to drain batch %s: %w", batchID, err)
		}
		if err := s.Purge(ctx, batchID); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying database connection.
func (s *Spool) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

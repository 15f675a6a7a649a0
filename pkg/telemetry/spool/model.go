// Package spool provides a local, database-backed queue for telemetry
// event batches. It is used as the reporting destination when no
// network endpoint is configured or reachable: batches are appended
// durably and drained by a later invocation. The package uses GORM so
// the queue works against SQLite (the default, one file under the
// state directory) and PostgreSQL without SQL differences leaking out.
package spool

import (
	"time"

	"github.com/nimbushq/nimbus/pkg/telemetry"
)

// EventRecord is one spooled telemetry event. Events of a batch share
// a BatchID and are ordered by Position, so a drain replays them in
// the exact order they were recorded.
type EventRecord struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// BatchID groups the events of one CLI invocation.
	BatchID string `gorm:"type:varchar(64);not null;index" json:"batch_id"`

	// Position is the insertion order of the event within its batch.
	Position int `gorm:"not null" json:"position"`

	Kind  string `gorm:"type:varchar(16);not null" json:"kind"`
	Key   string `gorm:"column:event_key;type:varchar(64);not null" json:"key"`
	Value string `gorm:"column:event_value;type:varchar(256);not null" json:"value"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (EventRecord) TableName() string {
	return "telemetry_events"
}

// ToEvent converts a stored record back to a telemetry event.
func (r *EventRecord) ToEvent() telemetry.Event {
	return telemetry.Event{
		Kind:  telemetry.EventKind(r.Kind),
		Key:   r.Key,
		Value: r.Value,
	}
}

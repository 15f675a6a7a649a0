package spool

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/nimbushq/nimbus/pkg/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestSpool creates an in-memory SQLite spool for testing.
func setupTestSpool(t *testing.T) *Spool {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open in-memory database")

	s, err := New(db)
	require.NoError(t, err, "failed to create spool")

	return s
}

// captureReporter records every batch it receives and optionally fails.
type captureReporter struct {
	batches [][]telemetry.Event
	err     error
}

func (r *captureReporter) Report(_ context.Context, events []telemetry.Event) error {
	if r.err != nil {
		return r.err
	}
	r.batches = append(r.batches, events)
	return nil
}

func TestSpool_ReportAndPending(t *testing.T) {
	s := setupTestSpool(t)
	defer s.Close()

	ctx := context.Background()

	events := []telemetry.Event{
		{Kind: telemetry.KindSubcommand, Key: "ls", Value: "list"},
		{Kind: telemetry.KindOption, Key: "environment", Value: "production"},
		{Kind: telemetry.KindFlag, Key: "prod", Value: "true"},
	}
	require.NoError(t, s.Report(ctx, events))

	records, err := s.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Order and contents survive the round trip.
	for i, rec := range records {
		assert.Equal(t, i, rec.Position)
		assert.Equal(t, events[i], rec.ToEvent())
	}

	// All events of one Report call share a batch id.
	assert.Equal(t, records[0].BatchID, records[2].BatchID)
	assert.NotEmpty(t, records[0].BatchID)
}

func TestSpool_ReportEmptyBatch(t *testing.T) {
	s := setupTestSpool(t)
	defer s.Close()

	require.NoError(t, s.Report(context.Background(), nil))

	records, err := s.Pending(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSpool_SeparateBatches(t *testing.T) {
	s := setupTestSpool(t)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Report(ctx, []telemetry.Event{{Kind: telemetry.KindFlag, Key: "yes", Value: "true"}}))
	require.NoError(t, s.Report(ctx, []telemetry.Event{{Kind: telemetry.KindFlag, Key: "force", Value: "true"}}))

	records, err := s.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.NotEqual(t, records[0].BatchID, records[1].BatchID)
}

func TestSpool_Purge(t *testing.T) {
	s := setupTestSpool(t)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Report(ctx, []telemetry.Event{{Kind: telemetry.KindFlag, Key: "yes", Value: "true"}}))
	require.NoError(t, s.Report(ctx, []telemetry.Event{{Kind: telemetry.KindFlag, Key: "force", Value: "true"}}))

	records, err := s.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.NoError(t, s.Purge(ctx, records[0].BatchID))

	remaining, err := s.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "force", remaining[0].Key)
}

func TestSpool_Drain(t *testing.T) {
	s := setupTestSpool(t)
	defer s.Close()

	ctx := context.Background()
	first := []telemetry.Event{
		{Kind: telemetry.KindSubcommand, Key: "rm", Value: "rm"},
		{Kind: telemetry.KindArgument, Key: "domainName", Value: telemetry.Placeholder},
	}
	second := []telemetry.Event{
		{Kind: telemetry.KindFlag, Key: "prod", Value: "true"},
	}
	require.NoError(t, s.Report(ctx, first))
	require.NoError(t, s.Report(ctx, second))

	reporter := &captureReporter{}
	require.NoError(t, s.Drain(ctx, reporter))

	require.Len(t, reporter.batches, 2)
	assert.Equal(t, first, reporter.batches[0])
	assert.Equal(t, second, reporter.batches[1])

	records, err := s.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, records, "drained batches should be purged")
}

func TestSpool_DrainStopsOnDeliveryFailure(t *testing.T) {
	s := setupTestSpool(t)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Report(ctx, []telemetry.Event{{Kind: telemetry.KindFlag, Key: "yes", Value: "true"}}))

	reporter := &captureReporter{err: errors.New("endpoint unreachable")}
	err := s.Drain(ctx, reporter)
	require.Error(t, err)

	// The batch stays queued for a later attempt.
	records, pendErr := s.Pending(ctx)
	require.NoError(t, pendErr)
	assert.Len(t, records, 1)
}

func TestSpool_ReportDatabaseError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "telemetry_events".*`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	s := &Spool{db: gdb}
	err = s.Report(context.Background(), []telemetry.Event{
		{Kind: telemetry.KindFlag, Key: "prod", Value: "true"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to spool telemetry batch")
}

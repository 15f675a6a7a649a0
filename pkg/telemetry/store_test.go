package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReporter captures Report calls for assertions.
type fakeReporter struct {
	calls   int
	batches [][]Event
	err     error
}

func (r *fakeReporter) Report(_ context.Context, events []Event) error {
	r.calls++
	r.batches = append(r.batches, events)
	return r.err
}

func TestStore_RecordPreservesOrder(t *testing.T) {
	store := NewStore(nil)

	events := []Event{
		{Kind: KindSubcommand, Key: "ls", Value: "list"},
		{Kind: KindOption, Key: "environment", Value: "production"},
		{Kind: KindFlag, Key: "prod", Value: "true"},
		{Kind: KindArgument, Key: "app", Value: Placeholder},
	}
	for _, ev := range events {
		store.Record(ev)
	}

	assert.Equal(t, events, store.Events())
}

func TestStore_EventsReturnsCopy(t *testing.T) {
	store := NewStore(nil)
	store.Record(Event{Kind: KindFlag, Key: "yes", Value: "true"})

	got := store.Events()
	got[0].Key = "mutated"

	assert.Equal(t, "yes", store.Events()[0].Key)
}

func TestStore_Reset(t *testing.T) {
	store := NewStore(nil)
	for i := 0; i < 5; i++ {
		store.Record(Event{Kind: KindFlag, Key: "yes", Value: "true"})
	}
	require.Len(t, store.Events(), 5)

	store.Reset()
	assert.Empty(t, store.Events())
}

func TestStore_Save(t *testing.T) {
	t.Run("DeliversBatchInOrder", func(t *testing.T) {
		reporter := &fakeReporter{}
		store := NewStore(reporter)
		store.Record(Event{Kind: KindOption, Key: "meta", Value: Placeholder})
		store.Record(Event{Kind: KindFlag, Key: "prod", Value: "true"})

		store.Save(context.Background())

		require.Equal(t, 1, reporter.calls)
		assert.Equal(t, store.Events(), reporter.batches[0])
	})

	t.Run("SecondSaveIsNoOp", func(t *testing.T) {
		reporter := &fakeReporter{}
		store := NewStore(reporter)
		store.Record(Event{Kind: KindFlag, Key: "yes", Value: "true"})

		store.Save(context.Background())
		store.Save(context.Background())

		assert.Equal(t, 1, reporter.calls)
	})

	t.Run("EmptyStoreSkipsReporter", func(t *testing.T) {
		reporter := &fakeReporter{}
		store := NewStore(reporter)

		store.Save(context.Background())

		assert.Zero(t, reporter.calls)
	})

	t.Run("NilReporterIsSafe", func(t *testing.T) {
		store := NewStore(nil)
		store.Record(Event{Kind: KindFlag, Key: "yes", Value: "true"})

		store.Save(context.Background())
	})

	t.Run("DeliveryFailureDoesNotPropagate", func(t *testing.T) {
		reporter := &fakeReporter{err: errors.New("endpoint down")}
		store := NewStore(reporter)
		store.Record(Event{Kind: KindFlag, Key: "yes", Value: "true"})

		// Save has no error return: a failing reporter must be
		// invisible to the command.
		store.Save(context.Background())

		assert.Equal(t, 1, reporter.calls)
	})

	t.Run("ResetReArmsSave", func(t *testing.T) {
		reporter := &fakeReporter{}
		store := NewStore(reporter)
		store.Record(Event{Kind: KindFlag, Key: "yes", Value: "true"})
		store.Save(context.Background())

		store.Reset()
		store.Record(Event{Kind: KindFlag, Key: "force", Value: "true"})
		store.Save(context.Background())

		require.Equal(t, 2, reporter.calls)
		assert.Equal(t, "force", reporter.batches[1][0].Key)
	})
}

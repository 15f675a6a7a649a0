package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/nimbushq/nimbus/pkg/config"
	"github.com/nimbushq/nimbus/pkg/observability/logging"
	"github.com/nimbushq/nimbus/pkg/telemetry"
	"github.com/nimbushq/nimbus/pkg/telemetry/spool"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes one command against a stub platform API with a
// fresh event store and returns the store for inspection.
func runCommand(t *testing.T, build func() *cobra.Command, args ...string) *telemetry.Store {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	cfg = &config.ClientConfig{
		CurrentProfile: "default",
		Profiles: map[string]config.ClientProfile{
			"default": {API: srv.URL},
		},
	}
	out = logging.NewCLILogger(false, io.Discard)
	store = telemetry.NewStore(nil)

	cmd := build()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	require.NoError(t, cmd.Execute())

	return store
}

// eventKeys collects the keys of the recorded events of one kind.
func eventKeys(events []telemetry.Event, kind telemetry.EventKind) []string {
	var keys []string
	for _, ev := range events {
		if ev.Kind == kind {
			keys = append(keys, ev.Key)
		}
	}
	return keys
}

func TestListCommand_LimitTrackedOnlyWhenPassed(t *testing.T) {
	t.Run("default limit records nothing", func(t *testing.T) {
		st := runCommand(t, newListCmd)

		keys := eventKeys(st.Events(), telemetry.KindOption)
		assert.NotContains(t, keys, "limit")
	})

	t.Run("explicit limit records one option", func(t *testing.T) {
		st := runCommand(t, newListCmd, "--limit", "50")

		events := st.Events()
		keys := eventKeys(events, telemetry.KindOption)
		require.Contains(t, keys, "limit")
		for _, ev := range events {
			if ev.Key == "limit" {
				assert.Equal(t, telemetry.Placeholder, ev.Value)
			}
		}
	})
}

func TestDomainsListCommand_LimitTrackedOnlyWhenPassed(t *testing.T) {
	st := runCommand(t, newDomainsListCmd)

	keys := eventKeys(st.Events(), telemetry.KindOption)
	assert.NotContains(t, keys, "limit")
}

func TestCertsListCommand_LimitTrackedOnlyWhenPassed(t *testing.T) {
	st := runCommand(t, newCertsListCmd)

	keys := eventKeys(st.Events(), telemetry.KindOption)
	assert.NotContains(t, keys, "limit")
}

func TestNewReporter_DrainsSpoolIntoEndpoint(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	spoolPath := filepath.Join(t.TempDir(), "telemetry.db")

	queued := []telemetry.Event{
		{Kind: telemetry.KindSubcommand, Key: "list", Value: "ls"},
		{Kind: telemetry.KindFlag, Key: "prod", Value: "true"},
	}
	sp, err := spool.NewSQLite(spoolPath)
	require.NoError(t, err)
	require.NoError(t, sp.Report(context.Background(), queued))
	require.NoError(t, sp.Close())

	var (
		mu      sync.Mutex
		batches [][]telemetry.Event
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Events []telemetry.Event `json:"events"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		mu.Lock()
		batches = append(batches, payload.Events)
		mu.Unlock()
	}))
	defer srv.Close()

	prof := &config.ClientProfile{
		Telemetry: config.TelemetryConfig{
			Enabled:  true,
			Endpoint: srv.URL,
			Spool:    spoolPath,
		},
	}

	reporter := newReporter(prof)
	require.NotNil(t, reporter)

	// The queued batch was delivered in recorded order.
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, batches, 1)
	assert.Equal(t, queued, batches[0])

	// And purged, so a later invocation does not resend it.
	sp, err = spool.NewSQLite(spoolPath)
	require.NoError(t, err)
	defer sp.Close()
	records, err := sp.Pending(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestNewReporter_NoSpoolFileSkipsDrain(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	prof := &config.ClientProfile{
		Telemetry: config.TelemetryConfig{
			Enabled:  true,
			Endpoint: srv.URL,
			Spool:    filepath.Join(t.TempDir(), "never-created.db"),
		},
	}

	reporter := newReporter(prof)
	require.NotNil(t, reporter)
	assert.Zero(t, calls, "an absent spool should not produce drain traffic")

	// The drain must not create an empty spool database either.
	assert.NoFileExists(t, prof.Telemetry.Spool)
}

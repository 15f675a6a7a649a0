// Package telemetry records anonymized usage events for nimbus commands.
//
// Every command constructs a specialized client bound to the shared
// output sink and event store, and calls one named tracking method per
// flag, option, or argument it accepts. The redaction policy is applied
// at those call sites: free-form values are replaced by Placeholder
// before recording, and only values drawn from small closed sets (flag
// names, known deployment targets, resolved subcommand names) are kept
// verbatim.
//
// The store is flushed once, best-effort, when the process exits.
// Delivery failures are logged at debug level only; no path in this
// package can fail a command or change its exit code.
package telemetry

import "github.com/nimbushq/nimbus/pkg/observability/logging"

// Options is the dependency pair every telemetry client is constructed
// with. The output sink is carried for parity with the other
// per-command helpers; the telemetry layer never writes through it.
type Options struct {
	Output *logging.CLILogger
	Store  *Store
}

// Client normalizes tracked inputs into events and records them to the
// store. It is command-agnostic: the per-command clients apply the
// redaction policy and delegate to these primitives with pre-redacted
// values.
type Client struct {
	output *logging.CLILogger
	store  *Store
}

// NewClient creates a base telemetry client bound to one invocation.
func NewClient(opts Options) *Client {
	return &Client{output: opts.Output, store: opts.Store}
}

// TrackCliOption records an option event. The value must already be
// redacted by the caller.
func (c *Client) TrackCliOption(key, value string) {
	c.store.Record(Event{Kind: KindOption, Key: key, Value: value})
}

// TrackCliFlag records a flag event. Callers invoke this only after
// determining the flag was actually set.
func (c *Client) TrackCliFlag(name string) {
	c.store.Record(Event{Kind: KindFlag, Key: name, Value: "true"})
}

// TrackCliArgument records an argument event for a positional input.
// The value must already be redacted by the caller.
func (c *Client) TrackCliArgument(key, value string) {
	c.store.Record(Event{Kind: KindArgument, Key: key, Value: value})
}

// TrackCliSubcommand records which alias the user typed for a canonical
// subcommand name, so usage stats reflect alias popularity. Both sides
// come from the command's own small name space.
func (c *Client) TrackCliSubcommand(typed, canonical string) {
	c.store.Record(Event{Kind: KindSubcommand, Key: canonical, Value: typed})
}

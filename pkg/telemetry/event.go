package telemetry

// EventKind identifies which class of CLI input produced an event.
type EventKind string

const (
	// KindOption marks an event for a named, valued flag (--environment staging).
	KindOption EventKind = "option"
	// KindFlag marks an event for a boolean switch (--prod).
	KindFlag EventKind = "flag"
	// KindArgument marks an event for a positional argument.
	KindArgument EventKind = "argument"
	// KindSubcommand marks an event recording which subcommand alias resolved
	// to which canonical name.
	KindSubcommand EventKind = "subcommand"
)

// Event is an immutable record of one tracked CLI interaction.
// Key is the stable flag/option/argument name; Value is either the
// literal user input when the redaction policy classifies it as safe,
// or Placeholder. Events are meaningful only in insertion order.
type Event struct {
	Kind  EventKind `json:"kind"`
	Key   string    `json:"key"`
	Value string    `json:"value"`
}

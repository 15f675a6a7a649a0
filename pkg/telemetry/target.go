package telemetry

// TargetTelemetry records anonymized usage for the target command.
type TargetTelemetry struct {
	*Client
}

// NewTargetTelemetry creates the telemetry client for target.
func NewTargetTelemetry(opts Options) *TargetTelemetry {
	return &TargetTelemetry{Client: NewClient(opts)}
}

// TrackCliSubcommand records which alias resolved to which canonical
// target subcommand (ls).
func (t *TargetTelemetry) TrackCliSubcommand(typed, canonical string) {
	t.trackSubcommand(typed, canonical)
}

// TrackCliOptionProject records that a project was named, never which.
func (t *TargetTelemetry) TrackCliOptionProject(value string) {
	t.trackScalar("project", value)
}

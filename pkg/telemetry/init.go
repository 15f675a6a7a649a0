package telemetry

// InitTelemetry records anonymized usage for the init command.
type InitTelemetry struct {
	*Client
}

// NewInitTelemetry creates the telemetry client for init.
func NewInitTelemetry(opts Options) *InitTelemetry {
	return &InitTelemetry{Client: NewClient(opts)}
}

func (t *InitTelemetry) TrackCliFlagForce(set bool) {
	t.trackFlag("force", set)
}

// TrackCliArgumentExample records that an example template was named.
func (t *InitTelemetry) TrackCliArgumentExample(value string) {
	t.trackArgument("example", value)
}

// TrackCliArgumentDir records that a target directory was given.
func (t *InitTelemetry) TrackCliArgumentDir(value string) {
	t.trackArgument("dir", value)
}

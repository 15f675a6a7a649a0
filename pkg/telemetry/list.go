package telemetry

// ListTelemetry records anonymized usage for the deployment listing
// command.
type ListTelemetry struct {
	*Client
}

// NewListTelemetry creates the telemetry client for list.
func NewListTelemetry(opts Options) *ListTelemetry {
	return &ListTelemetry{Client: NewClient(opts)}
}

func (t *ListTelemetry) TrackCliOptionLimit(n int) {
	t.trackCount("limit", n)
}

func (t *ListTelemetry) TrackCliOptionNext(value string) {
	t.trackScalar("next", value)
}

// TrackCliArgumentApp records that an app filter was given, never which.
func (t *ListTelemetry) TrackCliArgumentApp(value string) {
	t.trackArgument("app", value)
}

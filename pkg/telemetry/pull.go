package telemetry

// PullTelemetry records anonymized usage for the pull command.
type PullTelemetry struct {
	*Client
}

// NewPullTelemetry creates the telemetry client for pull.
func NewPullTelemetry(opts Options) *PullTelemetry {
	return &PullTelemetry{Client: NewClient(opts)}
}

// TrackCliOptionEnvironment records use of --environment. The literal
// is kept only for known deployment targets.
func (t *PullTelemetry) TrackCliOptionEnvironment(value string) {
	t.trackEnvironment("environment", value)
}

// TrackCliOptionGitBranch records that a branch was given, never which.
func (t *PullTelemetry) TrackCliOptionGitBranch(value string) {
	t.trackScalar("git-branch", value)
}

func (t *PullTelemetry) TrackCliFlagYes(set bool) {
	t.trackFlag("yes", set)
}

func (t *PullTelemetry) TrackCliFlagProd(set bool) {
	t.trackFlag("prod", set)
}

// TrackCliArgumentProjectPath records that a project path was given.
func (t *PullTelemetry) TrackCliArgumentProjectPath(value string) {
	t.trackArgument("projectPath", value)
}

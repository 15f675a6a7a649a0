package telemetry

// DeployTelemetry records anonymized usage for the deploy command.
type DeployTelemetry struct {
	*Client
}

// NewDeployTelemetry creates the telemetry client for deploy.
func NewDeployTelemetry(opts Options) *DeployTelemetry {
	return &DeployTelemetry{Client: NewClient(opts)}
}

// TrackCliOptionMeta records use of --meta key=value pairs.
func (t *DeployTelemetry) TrackCliOptionMeta(values []string) {
	t.trackCollection("meta", values)
}

// TrackCliOptionEnv records use of --env overrides.
func (t *DeployTelemetry) TrackCliOptionEnv(values []string) {
	t.trackCollection("env", values)
}

// TrackCliOptionBuildEnv records use of --build-env overrides.
func (t *DeployTelemetry) TrackCliOptionBuildEnv(values []string) {
	t.trackCollection("build-env", values)
}

// TrackCliOptionRegions records use of --regions.
func (t *DeployTelemetry) TrackCliOptionRegions(values []string) {
	t.trackCollection("regions", values)
}

// TrackCliOptionTarget records use of --target.
func (t *DeployTelemetry) TrackCliOptionTarget(value string) {
	t.trackEnvironment("target", value)
}

func (t *DeployTelemetry) TrackCliFlagProd(set bool) {
	t.trackFlag("prod", set)
}

func (t *DeployTelemetry) TrackCliFlagForce(set bool) {
	t.trackFlag("force", set)
}

func (t *DeployTelemetry) TrackCliFlagPublic(set bool) {
	t.trackFlag("public", set)
}

func (t *DeployTelemetry) TrackCliFlagYes(set bool) {
	t.trackFlag("yes", set)
}

// TrackCliArgumentApp records that an app path was given, never the path.
func (t *DeployTelemetry) TrackCliArgumentApp(value string) {
	t.trackArgument("app", value)
}

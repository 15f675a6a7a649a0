package telemetry

// DomainsTelemetry records anonymized usage for the domains command
// and its subcommands.
type DomainsTelemetry struct {
	*Client
}

// NewDomainsTelemetry creates the telemetry client for domains.
func NewDomainsTelemetry(opts Options) *DomainsTelemetry {
	return &DomainsTelemetry{Client: NewClient(opts)}
}

// TrackCliSubcommand records which alias resolved to which canonical
// domains subcommand (ls, inspect, add, rm, move).
func (t *DomainsTelemetry) TrackCliSubcommand(typed, canonical string) {
	t.trackSubcommand(typed, canonical)
}

// TrackCliOptionLimit records use of --limit pagination.
func (t *DomainsTelemetry) TrackCliOptionLimit(n int) {
	t.trackCount("limit", n)
}

// TrackCliOptionNext records use of the --next pagination cursor.
func (t *DomainsTelemetry) TrackCliOptionNext(value string) {
	t.trackScalar("next", value)
}

func (t *DomainsTelemetry) TrackCliFlagYes(set bool) {
	t.trackFlag("yes", set)
}

func (t *DomainsTelemetry) TrackCliFlagForce(set bool) {
	t.trackFlag("force", set)
}

// TrackCliArgumentDomainName records that a domain name was given,
// never the name itself.
func (t *DomainsTelemetry) TrackCliArgumentDomainName(value string) {
	t.trackArgument("domainName", value)
}

// TrackCliArgumentDestination records the destination of a domain move.
func (t *DomainsTelemetry) TrackCliArgumentDestination(value string) {
	t.trackArgument("destination", value)
}

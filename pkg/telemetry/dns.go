package telemetry

// DNSTelemetry records anonymized usage for the dns command and its
// subcommands.
type DNSTelemetry struct {
	*Client
}

// NewDNSTelemetry creates the telemetry client for dns.
func NewDNSTelemetry(opts Options) *DNSTelemetry {
	return &DNSTelemetry{Client: NewClient(opts)}
}

// TrackCliSubcommand records which alias resolved to which canonical
// dns subcommand (ls, add, rm, import).
func (t *DNSTelemetry) TrackCliSubcommand(typed, canonical string) {
	t.trackSubcommand(typed, canonical)
}

func (t *DNSTelemetry) TrackCliOptionLimit(n int) {
	t.trackCount("limit", n)
}

func (t *DNSTelemetry) TrackCliOptionNext(value string) {
	t.trackScalar("next", value)
}

func (t *DNSTelemetry) TrackCliOptionTTL(n int) {
	t.trackCount("ttl", n)
}

func (t *DNSTelemetry) TrackCliOptionPriority(n int) {
	t.trackCount("priority", n)
}

func (t *DNSTelemetry) TrackCliFlagYes(set bool) {
	t.trackFlag("yes", set)
}

// TrackCliArgumentDomain records that a domain was given, never which one.
func (t *DNSTelemetry) TrackCliArgumentDomain(value string) {
	t.trackArgument("domain", value)
}

// TrackCliArgumentRecordID records that a record id was given.
func (t *DNSTelemetry) TrackCliArgumentRecordID(value string) {
	t.trackArgument("recordId", value)
}

// TrackCliArgumentZoneFilePath records that a zone file was imported,
// never its path.
func (t *DNSTelemetry) TrackCliArgumentZoneFilePath(value string) {
	t.trackArgument("zoneFilePath", value)
}

package telemetry

// CertsTelemetry records anonymized usage for the certs command and
// its subcommands.
type CertsTelemetry struct {
	*Client
}

// NewCertsTelemetry creates the telemetry client for certs.
func NewCertsTelemetry(opts Options) *CertsTelemetry {
	return &CertsTelemetry{Client: NewClient(opts)}
}

// TrackCliSubcommand records which alias resolved to which canonical
// certs subcommand (ls, issue, rm).
func (t *CertsTelemetry) TrackCliSubcommand(typed, canonical string) {
	t.trackSubcommand(typed, canonical)
}

func (t *CertsTelemetry) TrackCliOptionLimit(n int) {
	t.trackCount("limit", n)
}

// TrackCliOptionCns records use of --cns common names.
func (t *CertsTelemetry) TrackCliOptionCns(values []string) {
	t.trackCollection("cns", values)
}

// TrackCliOptionCrt records use of a custom certificate file.
func (t *CertsTelemetry) TrackCliOptionCrt(value string) {
	t.trackScalar("crt", value)
}

// TrackCliOptionKey records use of a custom key file.
func (t *CertsTelemetry) TrackCliOptionKey(value string) {
	t.trackScalar("key", value)
}

// TrackCliOptionCa records use of a custom CA chain file.
func (t *CertsTelemetry) TrackCliOptionCa(value string) {
	t.trackScalar("ca", value)
}

func (t *CertsTelemetry) TrackCliFlagChallengeOnly(set bool) {
	t.trackFlag("challenge-only", set)
}

func (t *CertsTelemetry) TrackCliFlagYes(set bool) {
	t.trackFlag("yes", set)
}

// TrackCliArgumentID records that a certificate id was given.
func (t *CertsTelemetry) TrackCliArgumentID(value string) {
	t.trackArgument("id", value)
}

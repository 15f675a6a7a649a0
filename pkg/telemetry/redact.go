package telemetry

// Placeholder is the fixed marker recorded in place of any value the
// redaction policy classifies as sensitive. It is distinguishable from
// every valid field value, so recorded data never needs disambiguation.
const Placeholder = "[REDACTED]"

// deployTargets is the closed set of environment names that are safe to
// record verbatim. Any other environment value is replaced wholesale,
// which preserves the fact that a value was given without leaking it.
var deployTargets = map[string]struct{}{
	"production": {},
	"preview":    {},
}

// redactScalar hides a free-form value. Applying it to an already
// redacted value yields the same placeholder.
func redactScalar(string) string {
	return Placeholder
}

// redactEnvironment keeps the literal only when it names a known
// deployment target.
func redactEnvironment(value string) string {
	if _, ok := deployTargets[value]; ok {
		return value
	}
	return Placeholder
}

package telemetry

// Every tracked field falls into one of five classifications, each with
// a fixed guard and redaction rule. The per-command clients are thin
// named wrappers over these methods, so the classification of a field
// is visible at its single call site and cannot drift per command.

// trackCollection records an option event for a non-empty list value.
// The contents are redacted wholesale: presence and count are not
// sensitive, the elements are.
func (c *Client) trackCollection(key string, values []string) {
	if len(values) == 0 {
		return
	}
	c.TrackCliOption(key, Placeholder)
}

// trackEnvironment records an option event for an enumerated
// environment value, preserving only allow-listed deployment targets.
func (c *Client) trackEnvironment(key, value string) {
	if value == "" {
		return
	}
	c.TrackCliOption(key, redactEnvironment(value))
}

// trackScalar records an option event for a free-form scalar value.
func (c *Client) trackScalar(key, value string) {
	if value == "" {
		return
	}
	c.TrackCliOption(key, redactScalar(value))
}

// trackCount records an option event for a numeric option. Zero means
// the option was not given.
func (c *Client) trackCount(key string, n int) {
	if n == 0 {
		return
	}
	c.TrackCliOption(key, Placeholder)
}

// trackFlag records a flag event only when the flag was actually set.
// Absent or false flags produce no event.
func (c *Client) trackFlag(name string, set bool) {
	if !set {
		return
	}
	c.TrackCliFlag(name)
}

// trackArgument records an argument event with the value redacted.
func (c *Client) trackArgument(key, value string) {
	if value == "" {
		return
	}
	c.TrackCliArgument(key, redactScalar(value))
}

// trackSubcommand records the typed alias against the canonical
// subcommand name.
func (c *Client) trackSubcommand(typed, canonical string) {
	if typed == "" || canonical == "" {
		return
	}
	c.TrackCliSubcommand(typed, canonical)
}

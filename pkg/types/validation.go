package types

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation errors.
var (
	ErrDomainEmpty         = errors.New("domain name cannot be empty")
	ErrDomainTooLong       = errors.New("domain name too long (max 253 characters)")
	ErrDomainInvalidFormat = errors.New("domain name contains invalid characters")
	ErrRecordTypeInvalid   = errors.New("unsupported DNS record type")
	ErrRecordNameEmpty     = errors.New("DNS record name cannot be empty")
	ErrRecordValueEmpty    = errors.New("DNS record value cannot be empty")
	ErrMetaInvalidFormat   = errors.New("metadata must be in key=value format")
)

// MaxDomainLength is the RFC 1035 limit on a full domain name.
const MaxDomainLength = 253

// domainRegex validates domain name labels: alphanumerics and hyphens,
// dot-separated, no leading or trailing hyphen per label.
var domainRegex = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)

// recordTypes are the DNS record types the platform accepts.
var recordTypes = map[string]struct{}{
	"A": {}, "AAAA": {}, "ALIAS": {}, "CAA": {}, "CNAME": {},
	"MX": {}, "NS": {}, "SRV": {}, "TXT": {},
}

// ValidateDomainName checks a domain name before it is sent to the API.
func ValidateDomainName(name string) error {
	if name == "" {
		return ErrDomainEmpty
	}
	if utf8.RuneCountInString(name) > MaxDomainLength {
		return ErrDomainTooLong
	}
	if !domainRegex.MatchString(name) {
		return ErrDomainInvalidFormat
	}
	return nil
}

// Validate checks a DNS record before it is sent to the API.
func (r *DNSRecord) Validate() error {
	if _, ok := recordTypes[strings.ToUpper(r.Type)]; !ok {
		return ErrRecordTypeInvalid
	}
	if r.Name == "" {
		return ErrRecordNameEmpty
	}
	if r.Value == "" {
		return ErrRecordValueEmpty
	}
	return nil
}

// ParseMeta parses key=value metadata pairs as given on the command
// line. The raw values never leave the process except to the API; the
// telemetry layer only ever records their presence.
func ParseMeta(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	meta := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, ErrMetaInvalidFormat
		}
		meta[key] = value
	}
	return meta, nil
}

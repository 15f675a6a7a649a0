package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDomainName(t *testing.T) {
	tests := []struct {
		name    string
		domain  string
		wantErr error
	}{
		{"valid domain", "example.com", nil},
		{"valid subdomain", "app.staging.example.com", nil},
		{"valid with hyphen", "my-app.example.com", nil},
		{"empty", "", ErrDomainEmpty},
		{"no TLD", "example", ErrDomainInvalidFormat},
		{"leading hyphen", "-bad.example.com", ErrDomainInvalidFormat},
		{"spaces", "bad domain.com", ErrDomainInvalidFormat},
		{"too long", strings.Repeat("a", 250) + ".example.com", ErrDomainTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDomainName(tt.domain)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestDNSRecord_Validate(t *testing.T) {
	valid := DNSRecord{Name: "www", Type: "CNAME", Value: "example.com"}
	require.NoError(t, valid.Validate())

	t.Run("lowercase type accepted", func(t *testing.T) {
		rec := DNSRecord{Name: "www", Type: "cname", Value: "example.com"}
		assert.NoError(t, rec.Validate())
	})

	t.Run("unsupported type", func(t *testing.T) {
		rec := DNSRecord{Name: "www", Type: "SPF", Value: "v=spf1"}
		assert.ErrorIs(t, rec.Validate(), ErrRecordTypeInvalid)
	})

	t.Run("missing name", func(t *testing.T) {
		rec := DNSRecord{Type: "A", Value: "1.2.3.4"}
		assert.ErrorIs(t, rec.Validate(), ErrRecordNameEmpty)
	})

	t.Run("missing value", func(t *testing.T) {
		rec := DNSRecord{Name: "www", Type: "A"}
		assert.ErrorIs(t, rec.Validate(), ErrRecordValueEmpty)
	})
}

func TestParseMeta(t *testing.T) {
	t.Run("pairs", func(t *testing.T) {
		meta, err := ParseMeta([]string{"team=core", "ticket=ABC-123"})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"team": "core", "ticket": "ABC-123"}, meta)
	})

	t.Run("empty value allowed", func(t *testing.T) {
		meta, err := ParseMeta([]string{"flag="})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"flag": ""}, meta)
	})

	t.Run("nil for no pairs", func(t *testing.T) {
		meta, err := ParseMeta(nil)
		require.NoError(t, err)
		assert.Nil(t, meta)
	})

	t.Run("missing separator", func(t *testing.T) {
		_, err := ParseMeta([]string{"noequals"})
		assert.ErrorIs(t, err, ErrMetaInvalidFormat)
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := ParseMeta([]string{"=value"})
		assert.ErrorIs(t, err, ErrMetaInvalidFormat)
	})
}

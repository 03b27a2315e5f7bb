package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControlIDRoundTrip(t *testing.T) {
	for _, action := range []string{actionDiscordFormat, actionUnixFormat, actionCopyUnix} {
		t.Run(action, func(t *testing.T) {
			original := controlID{Action: action, UserID: "123456789012345678", UnixMillis: 1718452800123}
			parsed, err := parseControlID(original.String())
			require.NoError(t, err)
			assert.Equal(t, original, parsed)
		})
	}
}

func TestControlIDCacheKeyExcludesAction(t *testing.T) {
	toggle := controlID{Action: actionDiscordFormat, UserID: "42", UnixMillis: 1000}
	back := controlID{Action: actionUnixFormat, UserID: "42", UnixMillis: 1000}
	copied := controlID{Action: actionCopyUnix, UserID: "42", UnixMillis: 1000}

	assert.Equal(t, "42:1000", toggle.CacheKey())
	assert.Equal(t, toggle.CacheKey(), back.CacheKey())
	assert.Equal(t, toggle.CacheKey(), copied.CacheKey())
}

func TestParseControlIDRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no separators", "discord"},
		{"too few parts", "discord:42"},
		{"too many parts", "discord:42:1000:extra"},
		{"unknown action", "paste:42:1000"},
		{"non-numeric millis", "discord:42:soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseControlID(tt.in)
			assert.Error(t, err)
		})
	}
}

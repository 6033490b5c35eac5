package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsedFlags_Has(t *testing.T) {
	tests := []struct {
		name     string
		flags    []string
		checkFor string
		want     bool
	}{
		{
			name:     "flag present",
			flags:    []string{"--verbose", "--debug"},
			checkFor: "--verbose",
			want:     true,
		},
		{
			name:     "flag not present",
			flags:    []string{"--verbose"},
			checkFor: "--debug",
			want:     false,
		},
		{
			name:     "empty flags",
			flags:    []string{},
			checkFor: "--verbose",
			want:     false,
		},
		{
			name:     "flag with value not detected as boolean",
			flags:    []string{"--limit=5"},
			checkFor: "--limit",
			want:     false,
		},
		{
			name:     "multiple flags, check last",
			flags:    []string{"--verbose", "--debug", "--force"},
			checkFor: "--force",
			want:     true,
		},
		{
			name:     "multiple flags, check first",
			flags:    []string{"--verbose", "--debug", "--force"},
			checkFor: "--verbose",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := NewParsedFlags(tt.flags)
			got := pf.Has(tt.checkFor)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParsedFlags_String(t *testing.T) {
	tests := []struct {
		name       string
		flags      []string
		flagName   string
		defaultVal string
		want       string
	}{
		{
			name:       "flag present with value",
			flags:      []string{"--name=value"},
			flagName:   "--name",
			defaultVal: "default",
			want:       "value",
		},
		{
			name:       "flag not present returns default",
			flags:      []string{"--other=value"},
			flagName:   "--name",
			defaultVal: "default",
			want:       "default",
		},
		{
			name:       "empty flags returns default",
			flags:      []string{},
			flagName:   "--name",
			defaultVal: "default",
			want:       "default",
		},
		{
			name:       "flag with empty value",
			flags:      []string{"--name="},
			flagName:   "--name",
			defaultVal: "default",
			want:       "",
		},
		{
			name:       "flag value with spaces",
			flags:      []string{"--message=hello world"},
			flagName:   "--message",
			defaultVal: "",
			want:       "hello world",
		},
		{
			name:       "flag value with equals sign",
			flags:      []string{"--url=https://example.com?param=value"},
			flagName:   "--url",
			defaultVal: "",
			want:       "https://example.com?param=value",
		},
		{
			name:       "multiple flags, extract correct one",
			flags:      []string{"--first=value1", "--second=value2", "--third=value3"},
			flagName:   "--second",
			defaultVal: "",
			want:       "value2",
		},
		{
			name:       "duplicate flags, first one wins",
			flags:      []string{"--name=first", "--name=second"},
			flagName:   "--name",
			defaultVal: "",
			want:       "first",
		},
		// Space-separated format: --flag value
		{
			name:       "space separated format",
			flags:      []string{"--name", "value"},
			flagName:   "--name",
			defaultVal: "default",
			want:       "value",
		},
		{
			name:       "space separated with other flags",
			flags:      []string{"--verbose", "--name", "value", "--debug"},
			flagName:   "--name",
			defaultVal: "default",
			want:       "value",
		},
		{
			name:       "space separated next value is flag returns default",
			flags:      []string{"--name", "--other"},
			flagName:   "--name",
			defaultVal: "default",
			want:       "default",
		},
		{
			name:       "space separated flag at end returns default",
			flags:      []string{"--verbose", "--name"},
			flagName:   "--name",
			defaultVal: "default",
			want:       "default",
		},
		{
			name:       "equals format takes precedence over space",
			flags:      []string{"--name=equals", "--name", "space"},
			flagName:   "--name",
			defaultVal: "default",
			want:       "equals",
		},
		{
			name:       "space separated with short flag as next",
			flags:      []string{"--name", "-v"},
			flagName:   "--name",
			defaultVal: "default",
			want:       "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := NewParsedFlags(tt.flags)
			got := pf.String(tt.flagName, tt.defaultVal)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParsedFlags_Raw(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
	}{
		{
			name:  "empty flags",
			flags: []string{},
		},
		{
			name:  "single flag",
			flags: []string{"--verbose"},
		},
		{
			name:  "multiple flags",
			flags: []string{"--verbose", "--limit=5", "--since=2024-01-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := NewParsedFlags(tt.flags)
			got := pf.Raw()
			require.Equal(t, tt.flags, got)
		})
	}
}

func TestParsedFlags_Unknown(t *testing.T) {
	valid := []string{"--tui", "--log-level", "--no-color"}

	tests := []struct {
		name  string
		flags []string
		want  []string
	}{
		{name: "all known", flags: []string{"--tui", "--no-color"}, want: nil},
		{name: "value flag known", flags: []string{"--log-level=debug"}, want: nil},
		{name: "unknown flag", flags: []string{"--tui", "--bogus"}, want: []string{"--bogus"}},
		{name: "unknown value flag", flags: []string{"--pager=less"}, want: []string{"--pager=less"}},
		{name: "empty", flags: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NewParsedFlags(tt.flags).Unknown(valid))
		})
	}
}

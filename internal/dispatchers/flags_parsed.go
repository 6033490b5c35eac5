package dispatchers

import (
	"strings"
)

// ParsedFlags provides typed access to command-line flags.
type ParsedFlags struct {
	raw []string
}

// NewParsedFlags creates a ParsedFlags from a slice of flag strings.
func NewParsedFlags(flags []string) *ParsedFlags {
	return &ParsedFlags{raw: flags}
}

// Raw returns the underlying flag strings.
func (f *ParsedFlags) Raw() []string {
	return f.raw
}

// Has returns true if the flag is present (for boolean flags).
func (f *ParsedFlags) Has(name string) bool {
	for _, flag := range f.raw {
		if flag == name {
			return true
		}
	}
	return false
}

// String returns the value of a flag, or defaultVal if not present.
// Supports both --flag=value and --flag value formats; the first wins.
func (f *ParsedFlags) String(name, defaultVal string) string {
	prefix := name + "="
	for _, flag := range f.raw {
		if strings.HasPrefix(flag, prefix) {
			return strings.TrimPrefix(flag, prefix)
		}
	}

	for i, flag := range f.raw {
		if flag != name || i+1 >= len(f.raw) {
			continue
		}
		next := f.raw[i+1]
		if strings.HasPrefix(next, "-") {
			return defaultVal
		}
		return next
	}
	return defaultVal
}

// Unknown returns the flags whose names are not in valid.
// Values after "=" are ignored when matching.
func (f *ParsedFlags) Unknown(valid []string) []string {
	known := make(map[string]bool, len(valid))
	for _, v := range valid {
		known[v] = true
	}

	var unknown []string
	for _, flag := range f.raw {
		name := flag
		if idx := strings.Index(flag, "="); idx != -1 {
			name = flag[:idx]
		}
		if !known[name] {
			unknown = append(unknown, flag)
		}
	}
	return unknown
}

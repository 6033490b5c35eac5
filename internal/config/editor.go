package config

import "strings"

// Set assigns key in lines, keeping comments, other keys and any inline
// comment on the replaced line. Reports whether an existing entry was updated.
func Set(lines []string, key, value string) ([]string, bool) {
	entry := key + "=" + quote(value)

	for i, line := range lines {
		k, rest, ok := splitEntry(line)
		if !ok || k != key {
			continue
		}

		if idx := strings.Index(rest, " #"); idx >= 0 {
			lines[i] = entry + " " + strings.TrimSpace(rest[idx:])
		} else {
			lines[i] = entry
		}
		return lines, true
	}

	return append(lines, entry), false
}

// Unset drops every entry for key. Reports whether anything was removed.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		if k, _, ok := splitEntry(line); ok && k == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}

func splitEntry(line string) (key, rest string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	k, v, found := strings.Cut(trimmed, "=")
	if !found {
		return "", "", false
	}
	return strings.TrimSpace(k), v, true
}

// quote wraps values that would lose leading or trailing blanks on reparse.
func quote(value string) string {
	if value != strings.TrimSpace(value) {
		return `"` + value + `"`
	}
	return value
}

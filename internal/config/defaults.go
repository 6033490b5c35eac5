package config

import "github.com/footprint-tools/stockline/internal/domain"

// Defaults maps every known key to its built-in value.
var Defaults = func() map[string]func() string {
	m := make(map[string]func() string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		value := key.Default
		m[key.Name] = func() string { return value }
	}
	return m
}()

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	cfg, err := readParsed()
	if err == nil {
		if value, exists := cfg[key]; exists {
			return value, true
		}
	}

	if defaultFn, ok := Defaults[key]; ok {
		return defaultFn(), true
	}
	return "", false
}

// GetAll returns all config values (user overrides merged with defaults).
// A missing or unreadable file yields the defaults alone.
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(Defaults))
	for key, valueFn := range Defaults {
		result[key] = valueFn()
	}

	cfg, err := readParsed()
	if err != nil {
		return result, nil
	}
	for key, value := range cfg {
		result[key] = value
	}
	return result, nil
}

func readParsed() (map[string]string, error) {
	lines, err := ReadLines()
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}

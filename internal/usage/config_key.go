package usage

import "fmt"

// InvalidConfigKey is returned by the config subcommands for unknown or unset keys.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("stockline: unknown config key %q", key),
	}
}

package config

import (
	"github.com/footprint-tools/stockline/internal/dispatchers"
	"github.com/footprint-tools/stockline/internal/domain"
	"github.com/footprint-tools/stockline/internal/usage"
)

// Set writes key=value to ~/.stocklinerc. Only known keys are accepted.
func Set(args []string, flags *dispatchers.ParsedFlags) error {
	return set(args, flags, DefaultDeps())
}

func set(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key")
	}
	if len(args) < 2 {
		return usage.MissingArgument("value")
	}

	key, value := args[0], args[1]
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	var updated bool
	err := deps.WithLock(func() error {
		lines, err := deps.ReadLines()
		if err != nil {
			return err
		}
		lines, updated = deps.Set(lines, key, value)
		return deps.WriteLines(lines)
	})
	if err != nil {
		return err
	}

	action := "added"
	if updated {
		action = "updated"
	}
	_, _ = deps.Printf("%s %s=%s\n", action, key, value)
	return nil
}

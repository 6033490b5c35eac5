package config

import (
	"encoding/json"

	"github.com/footprint-tools/stockline/internal/dispatchers"
	"github.com/footprint-tools/stockline/internal/domain"
)

type entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// List prints every known key with its effective value. Optional color
// overrides are shown only when set.
func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	values, err := deps.GetAll()
	if err != nil {
		return err
	}

	var entries []entry
	for _, key := range domain.ConfigKeys {
		value, ok := values[key.Name]
		if !ok {
			value = key.Default
		}
		if key.HideIfEmpty && value == "" {
			continue
		}
		entries = append(entries, entry{Key: key.Name, Value: value})
	}

	if flags.Has("--json") {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, _ = deps.Println(string(data))
		return nil
	}

	for _, e := range entries {
		_, _ = deps.Printf("%s=%s\n", e.Key, e.Value)
	}
	return nil
}

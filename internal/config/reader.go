package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/footprint-tools/stockline/internal/domain"
	"github.com/footprint-tools/stockline/internal/paths"
)

// ReadLines returns the raw lines of ~/.stocklinerc. A missing or empty file
// is created and seeded with the default keys.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(configPath)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	_ = os.Chmod(configPath, 0600)

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 {
		lines = DefaultLines()
		if err := WriteLines(lines); err != nil {
			return lines, nil
		}
	}

	return lines, nil
}

// DefaultLines renders the seed contents of a new config file, grouped by section.
func DefaultLines() []string {
	lines := []string{
		"# stockline configuration",
		"# Edit values below or use: stockline config set <key> <value>",
	}

	section := ""
	for _, key := range domain.ConfigKeys {
		if key.Section != section {
			section = key.Section
			lines = append(lines, "", "# "+section)
		}

		value := key.Default
		if strings.ContainsAny(value, " \t") {
			value = `"` + value + `"`
		}

		if key.HideIfEmpty {
			lines = append(lines, "# "+key.Name+"=")
		} else {
			lines = append(lines, key.Name+"="+value)
		}
	}

	return lines
}

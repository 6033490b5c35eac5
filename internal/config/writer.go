package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/footprint-tools/stockline/internal/paths"
)

// WriteLines replaces ~/.stocklinerc with lines.
// A symlinked rc file (dotfile managers) is written through to its target.
func WriteLines(lines []string) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}

	target, err := resolveTarget(configPath)
	if err != nil {
		return err
	}
	return replaceFile(target, renderLines(lines))
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// renderLines writes one entry per row and ends with a single newline.
// Line breaks inside an entry become spaces; trailing blank rows are dropped.
func renderLines(lines []string) []byte {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	if end == 0 {
		return nil
	}

	var b strings.Builder
	for _, line := range lines[:end] {
		b.WriteString(lineBreaks.Replace(line))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func resolveTarget(path string) (string, error) {
	info, err := os.Lstat(path)
	if errors.Is(err, os.ErrNotExist) {
		return path, nil
	}
	if err != nil {
		return "", err
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return path, nil
	}

	target, err := filepath.EvalSymlinks(path)
	if errors.Is(err, os.ErrNotExist) {
		// dangling link: create the file it points at
		if target, err = os.Readlink(path); err == nil && !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(path), target)
		}
	}
	if err != nil {
		return "", fmt.Errorf("config: resolve %s: %w", path, err)
	}
	return target, nil
}

// replaceFile swaps content in via a synced temp file in the same directory,
// so readers see the old file or the new one and never a partial write.
func replaceFile(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	done := false
	defer func() {
		if !done {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := tmp.Chmod(0600); err != nil {
		return err
	}
	if _, err := tmp.Write(content); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	done = true
	return nil
}

package paths

import (
	"os"
	"path/filepath"
)

const (
	appDirName     = "stockline"
	configFileName = ".stocklinerc"
	logFileName    = "stockline.log"
)

// AppDataDir returns the application data directory, where the log lives.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns ~/.stocklinerc.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, configFileName), nil
}

// LogFilePath returns the path to the session log inside AppDataDir.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), logFileName)
}

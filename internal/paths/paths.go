package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "fanout"

// AppDataDir returns the application data directory for the log and database.
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

// ConfigFilePath returns ~/.forc.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".forc"), nil
}

// LogFilePath returns <AppDataDir>/fo.log.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "fo.log")
}

// DatabasePath returns <AppDataDir>/fanout.db.
func DatabasePath() string {
	return filepath.Join(AppDataDir(), "fanout.db")
}

// Package paths centralizes where cmdtree keeps its files on disk.
package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "cmdtree"

// AppDataDir returns the directory for logs and the history database:
// the per-user config root (XDG_CONFIG_HOME, ~/Library/Application
// Support, or %AppData%) plus "cmdtree". The directory is created on
// first use, private to the user.
func AppDataDir() string {
	root, err := os.UserConfigDir()
	if err != nil {
		// No home to speak of; fall back to the working directory.
		return "."
	}

	dir := filepath.Join(root, appDirName)
	_ = os.MkdirAll(dir, 0700)
	return dir
}

// ConfigFilePath returns the user config file, a dotfile in the home
// directory rather than the data dir so it stays easy to find and edit.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cmdtreerc"), nil
}

// LogFilePath returns the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "cmdtree.log")
}

// HistoryDBPath returns the SQLite input-history database.
func HistoryDBPath() string {
	return filepath.Join(AppDataDir(), "history.db")
}

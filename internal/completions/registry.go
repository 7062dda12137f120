package completions

import (
	"os"
	"path/filepath"
)

const defaultBinaryName = "fo"

// BinaryName returns the name fo was invoked as, following symlinks, so a
// renamed build completes under its own name.
func BinaryName() string {
	exe, err := os.Executable()
	if err != nil {
		if len(os.Args) > 0 && os.Args[0] != "" {
			return filepath.Base(os.Args[0])
		}
		return defaultBinaryName
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	if name := filepath.Base(exe); name != "" && name != "." {
		return name
	}
	return defaultBinaryName
}

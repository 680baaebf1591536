package notify

import (
	"os"
	"path/filepath"
)

const notifierExecRelPath = "Contents/MacOS/terminal-notifier"

// FindNotifierPath returns the first existing notifier executable among the
// candidate locations, or "" when none exists. The explicit path (from
// config) is tried first, then the DESKPAL_NOTIFIER environment variable,
// then the branded DeskPal.app bundle and finally the pre-rename
// terminal-notifier.app bundle in the standard install locations.
func FindNotifierPath(explicit string) string {
	for _, candidate := range candidateNotifierPaths(explicit) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

func candidateNotifierPaths(explicit string) []string {
	var candidates []string
	if explicit != "" {
		candidates = append(candidates, explicit)
	}
	if envPath := os.Getenv("DESKPAL_NOTIFIER"); envPath != "" {
		candidates = append(candidates, envPath)
	}

	var baseDirs []string
	if execPath, err := os.Executable(); err == nil {
		baseDirs = append(baseDirs, filepath.Join(filepath.Dir(execPath), "vendor"))
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		baseDirs = append(baseDirs, filepath.Join(homeDir, "Applications"))
	}
	baseDirs = append(baseDirs, "/Applications")

	// Branded bundle everywhere first, then the unrenamed fallback.
	for _, bundle := range []string{"DeskPal.app", "terminal-notifier.app"} {
		for _, dir := range baseDirs {
			candidates = append(candidates, filepath.Join(dir, bundle, filepath.FromSlash(notifierExecRelPath)))
		}
	}
	return candidates
}

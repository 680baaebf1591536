// Package setup rebrands the vendored terminal-notifier app bundle as
// DeskPal.app so macOS notifications carry the DeskPal name and icon, and
// so notification settings show up under "DeskPal" in System Settings.
// Everything here is best effort: when setup cannot complete, notifications
// still work with default branding.
package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

const (
	brandedBundle   = "DeskPal.app"
	unbrandedBundle = "terminal-notifier.app"
	iconFileName    = "deskpal.icns"
)

var (
	iconFileRe   = regexp.MustCompile(`<key>CFBundleIconFile</key>\s*<string>[^<]+</string>`)
	bundleIDRe   = regexp.MustCompile(`<key>CFBundleIdentifier</key>\s*<string>[^<]+</string>`)
	bundleNameRe = regexp.MustCompile(`<key>CFBundleName</key>\s*<string>[^<]+</string>`)
)

// EnsureAppBundle locates a vendored notifier bundle and rebrands it:
// rename to DeskPal.app, install the DeskPal icon, patch Info.plist.
// No-op outside macOS or when the bundle is already branded. A missing
// bundle or icon is logged and swallowed; only the rebranding steps
// themselves can return an error.
func EnsureAppBundle(logger zerolog.Logger) error {
	logger = logger.With().Str("component", "setup").Logger()

	if runtime.GOOS != "darwin" {
		return nil
	}

	bundlePath, renamed := findNotifierBundle()
	if bundlePath == "" {
		logger.Warn().Msg("terminal-notifier bundle not found; skipping setup")
		return nil
	}
	if renamed {
		logger.Debug().Str("bundle", bundlePath).Msg("Notifier bundle already branded")
		return nil
	}

	iconSource := findIconSource()
	if iconSource == "" {
		logger.Warn().Msg("DeskPal icon not found; skipping setup")
		return nil
	}

	brandedPath := filepath.Join(filepath.Dir(bundlePath), brandedBundle)

	// The bundle directory can be transiently busy right after a
	// notification was posted from it, so the rename is retried briefly.
	renameOp := func() error {
		return os.Rename(bundlePath, brandedPath)
	}
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = 100 * time.Millisecond
	eb.MaxElapsedTime = 3 * time.Second
	if err := backoff.Retry(renameOp, eb); err != nil {
		return fmt.Errorf("failed to rename notifier bundle: %w", err)
	}
	logger.Info().Str("bundle", brandedPath).Msg("Renamed notifier bundle")

	resourcesDir := filepath.Join(brandedPath, "Contents", "Resources")
	if err := copyFile(iconSource, filepath.Join(resourcesDir, iconFileName)); err != nil {
		return fmt.Errorf("failed to install icon: %w", err)
	}

	infoPlist := filepath.Join(brandedPath, "Contents", "Info.plist")
	plistContent, err := os.ReadFile(infoPlist) //#nosec G304 -- path derives from the discovered bundle
	if err != nil {
		return fmt.Errorf("failed to read Info.plist: %w", err)
	}
	if err := os.WriteFile(infoPlist, []byte(PatchInfoPlist(string(plistContent))), 0o600); err != nil {
		return fmt.Errorf("failed to write Info.plist: %w", err)
	}

	logger.Info().Msg("Notification branding setup complete")
	return nil
}

// PatchInfoPlist rewrites the bundle's icon reference, identifier, and
// display name, leaving the rest of the document untouched.
func PatchInfoPlist(content string) string {
	content = iconFileRe.ReplaceAllString(content,
		"<key>CFBundleIconFile</key>\n\t<string>deskpal</string>")
	content = bundleIDRe.ReplaceAllString(content,
		"<key>CFBundleIdentifier</key>\n\t<string>com.deskpal</string>")
	content = bundleNameRe.ReplaceAllString(content,
		"<key>CFBundleName</key>\n\t<string>DeskPal</string>")
	return content
}

// findNotifierBundle returns the first notifier bundle among the candidate
// vendor directories, preferring an already-branded copy.
func findNotifierBundle() (path string, renamed bool) {
	for _, dir := range candidateVendorDirs() {
		branded := filepath.Join(dir, brandedBundle)
		if info, err := os.Stat(branded); err == nil && info.IsDir() {
			return branded, true
		}
		unbranded := filepath.Join(dir, unbrandedBundle)
		if info, err := os.Stat(unbranded); err == nil && info.IsDir() {
			return unbranded, false
		}
	}
	return "", false
}

func candidateVendorDirs() []string {
	var dirs []string
	if envDir := os.Getenv("DESKPAL_VENDOR_DIR"); envDir != "" {
		dirs = append(dirs, envDir)
	}
	if execPath, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Join(filepath.Dir(execPath), "vendor"))
	}
	return dirs
}

// findIconSource checks the icon locations for both installed and
// development layouts.
func findIconSource() string {
	var candidates []string
	if execPath, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(execPath), "assets", iconFileName))
	}
	candidates = append(candidates, filepath.Join("assets", iconFileName))

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src) //#nosec G304 -- source is a discovered asset path
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o600)
}

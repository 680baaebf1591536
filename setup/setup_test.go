package setup

import (
	"strings"
	"testing"
)

const samplePlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleExecutable</key>
	<string>terminal-notifier</string>
	<key>CFBundleIconFile</key>
	<string>Terminal</string>
	<key>CFBundleIdentifier</key>
	<string>fr.julienxx.oss.terminal-notifier</string>
	<key>CFBundleName</key>
	<string>terminal-notifier</string>
	<key>CFBundleVersion</key>
	<string>2.0.0</string>
</dict>
</plist>
`

func TestPatchInfoPlist(t *testing.T) {
	patched := PatchInfoPlist(samplePlist)

	for _, want := range []string{
		"<key>CFBundleIconFile</key>\n\t<string>deskpal</string>",
		"<key>CFBundleIdentifier</key>\n\t<string>com.deskpal</string>",
		"<key>CFBundleName</key>\n\t<string>DeskPal</string>",
	} {
		if !strings.Contains(patched, want) {
			t.Errorf("patched plist missing %q:\n%s", want, patched)
		}
	}

	for _, gone := range []string{
		"<string>Terminal</string>",
		"fr.julienxx.oss.terminal-notifier",
		"<string>terminal-notifier</string>\n\t<key>CFBundleVersion</key>",
	} {
		if strings.Contains(patched, gone) {
			t.Errorf("patched plist still contains %q", gone)
		}
	}

	// Untouched keys survive
	if !strings.Contains(patched, "<key>CFBundleExecutable</key>\n\t<string>terminal-notifier</string>") {
		t.Error("CFBundleExecutable must not be rewritten")
	}
	if !strings.Contains(patched, "<key>CFBundleVersion</key>\n\t<string>2.0.0</string>") {
		t.Error("CFBundleVersion must not be rewritten")
	}
}

func TestPatchInfoPlistIdempotent(t *testing.T) {
	once := PatchInfoPlist(samplePlist)
	twice := PatchInfoPlist(once)
	if once != twice {
		t.Error("patching a patched plist must be a no-op")
	}
}

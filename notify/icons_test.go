package notify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func testAliases() map[string]string {
	return map[string]string{
		"claude":         "claude.png",
		"claude-desktop": "claude.png",
		"claude-code":    "claude.png",
		"cursor":         "cursor.png",
		"vscode":         "vscode.png",
		"openai":         "openai.png",
		"chatgpt":        "openai.png",
	}
}

func writeIcon(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("png"), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestContentImageForClient(t *testing.T) {
	dir := t.TempDir()
	writeIcon(t, dir, "claude.png")
	writeIcon(t, dir, "cursor.png")

	resolver := NewIconResolver(dir, testAliases(), zerolog.Nop())

	tests := []struct {
		name   string
		client string
		want   string
	}{
		{"exact match", "claude", filepath.Join(dir, "claude.png")},
		{"uppercase normalized", "Claude", filepath.Join(dir, "claude.png")},
		{"whitespace collapsed", "Claude  Desktop", filepath.Join(dir, "claude.png")},
		{"substring fallback", "claude-code-v2", filepath.Join(dir, "claude.png")},
		{"different client", "cursor", filepath.Join(dir, "cursor.png")},
		{"alias with missing asset", "vscode", ""},
		{"unknown client", "some-other-agent", ""},
		{"empty client", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.ContentImageForClient(tt.client)
			if got != tt.want {
				t.Errorf("ContentImageForClient(%q) = %q, want %q", tt.client, got, tt.want)
			}
		})
	}
}

func TestContentImageForClientNoDir(t *testing.T) {
	resolver := NewIconResolver("", testAliases(), zerolog.Nop())
	if got := resolver.ContentImageForClient("claude"); got != "" {
		t.Errorf("ContentImageForClient with no icon dir = %q, want \"\"", got)
	}
}

func TestNormalizeClientName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Claude Desktop", "claude-desktop"},
		{"  Claude   Code  ", "claude-code"},
		{"cursor", "cursor"},
		{"ChatGPT", "chatgpt"},
	}

	for _, tt := range tests {
		if got := normalizeClientName(tt.input); got != tt.want {
			t.Errorf("normalizeClientName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

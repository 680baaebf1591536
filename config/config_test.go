package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Timeouts.Simple != 10 || cfg.Timeouts.Actions != 30 || cfg.Timeouts.Reply != 60 {
		t.Errorf("unexpected default timeout tiers: %+v", cfg.Timeouts)
	}
	if cfg.Limits.Title != 256 || cfg.Limits.Message != 4000 || cfg.Limits.Action != 64 ||
		cfg.Limits.DropdownLabel != 64 || cfg.Limits.MaxActions != 3 {
		t.Errorf("unexpected default sanitize limits: %+v", cfg.Limits)
	}
	if cfg.Notifier.DefaultTitle != DefaultTitle {
		t.Errorf("DefaultTitle = %q, want %q", cfg.Notifier.DefaultTitle, DefaultTitle)
	}

	aliases := map[string]string{
		"claude":      "claude.png",
		"claude-code": "claude.png",
		"opus":        "claude.png",
		"cursor":      "cursor.png",
		"vscode":      "vscode.png",
		"openai":      "openai.png",
		"chatgpt":     "openai.png",
		"codex":       "openai.png",
	}
	for name, icon := range aliases {
		if cfg.ClientIcons[name] != icon {
			t.Errorf("ClientIcons[%q] = %q, want %q", name, cfg.ClientIcons[name], icon)
		}
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Timeouts.Simple != 10 {
		t.Errorf("Timeouts.Simple = %v, want default 10", cfg.Timeouts.Simple)
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
timeouts:
  simple: 5
notifier:
  default_title: "Custom Bot"
limits:
  title: 128
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	// Overridden values win
	if cfg.Timeouts.Simple != 5 {
		t.Errorf("Timeouts.Simple = %v, want 5", cfg.Timeouts.Simple)
	}
	if cfg.Notifier.DefaultTitle != "Custom Bot" {
		t.Errorf("Notifier.DefaultTitle = %q, want %q", cfg.Notifier.DefaultTitle, "Custom Bot")
	}
	if cfg.Limits.Title != 128 {
		t.Errorf("Limits.Title = %v, want 128", cfg.Limits.Title)
	}

	// Unset values keep defaults
	if cfg.Timeouts.Actions != 30 || cfg.Timeouts.Reply != 60 {
		t.Errorf("unset tiers lost defaults: %+v", cfg.Timeouts)
	}
	if cfg.Limits.Message != 4000 || cfg.Limits.MaxActions != 3 {
		t.Errorf("unset limits lost defaults: %+v", cfg.Limits)
	}
	if cfg.ClientIcons["claude"] != "claude.png" {
		t.Error("client icon table lost defaults")
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("timeouts: ["), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load accepted invalid YAML")
	}
}

func TestGetConfigPathEnvOverride(t *testing.T) {
	t.Setenv("DESKPAL_CONFIG_PATH", "/tmp/custom.yaml")
	if got := GetConfigPath(); got != "/tmp/custom.yaml" {
		t.Errorf("GetConfigPath() = %q, want env override", got)
	}
}

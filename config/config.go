// Package config loads the deskpald configuration: YAML file values merged
// over built-in defaults. The sanitize limits, timeout tiers, and client
// icon aliases defined here are constructed once at startup and passed by
// reference into the pure functions that consult them.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// DefaultTitle is the notification title used when the caller supplies none.
// It is also the brand name of the renamed notifier app bundle.
const DefaultTitle = "DeskPal"

// LogConfig controls where and how the server logs.
type LogConfig struct {
	File   string `yaml:"file,omitempty"`   // Log file path (default: ~/.deskpal/deskpal.log)
	Pretty bool   `yaml:"pretty,omitempty"` // Human-readable stderr output instead of a file
}

// NotifierConfig controls the native delivery mechanism.
type NotifierConfig struct {
	Path         string `yaml:"path,omitempty"`          // Explicit terminal-notifier executable path
	IconDir      string `yaml:"icon_dir,omitempty"`      // Directory holding client icon assets
	DefaultTitle string `yaml:"default_title,omitempty"` // Title used when the caller omits one
}

// TimeoutTiers holds the default notification wait times in seconds,
// keyed by interaction mode. An explicit caller timeout bypasses them.
type TimeoutTiers struct {
	Simple  float64 `yaml:"simple,omitempty"`
	Actions float64 `yaml:"actions,omitempty"`
	Reply   float64 `yaml:"reply,omitempty"`
}

// SanitizeLimits holds the per-field length caps applied to tool input.
// Lengths count user-perceived characters (runes), not bytes.
type SanitizeLimits struct {
	Title         int `yaml:"title,omitempty"`
	Message       int `yaml:"message,omitempty"`
	Action        int `yaml:"action,omitempty"`
	DropdownLabel int `yaml:"dropdown_label,omitempty"`
	MaxActions    int `yaml:"max_actions,omitempty"`
}

// Config is the full deskpald configuration.
type Config struct {
	Log      LogConfig      `yaml:"log,omitempty"`
	Notifier NotifierConfig `yaml:"notifier,omitempty"`
	Timeouts TimeoutTiers   `yaml:"timeouts,omitempty"`
	Limits   SanitizeLimits `yaml:"limits,omitempty"`

	// ClientIcons maps normalized MCP client names to icon asset filenames.
	ClientIcons map[string]string `yaml:"client_icons,omitempty"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			File: filepath.Join(StateDir(), "deskpal.log"),
		},
		Notifier: NotifierConfig{
			IconDir:      defaultIconDir(),
			DefaultTitle: DefaultTitle,
		},
		Timeouts: TimeoutTiers{
			Simple:  10,
			Actions: 30,
			Reply:   60,
		},
		Limits: SanitizeLimits{
			Title:         256,
			Message:       4000,
			Action:        64,
			DropdownLabel: 64,
			MaxActions:    3,
		},
		ClientIcons: map[string]string{
			// Anthropic
			"claude":         "claude.png",
			"claude-desktop": "claude.png",
			"claude-code":    "claude.png",
			"opus":           "claude.png",

			// OpenAI
			"openai":  "openai.png",
			"chatgpt": "openai.png",
			"codex":   "openai.png",

			// Misc
			"cursor": "cursor.png",
			"vscode": "vscode.png",
		},
	}
}

// GetConfigPath returns the default config file path.
// Can be overridden via DESKPAL_CONFIG_PATH environment variable.
func GetConfigPath() string {
	if envPath := os.Getenv("DESKPAL_CONFIG_PATH"); envPath != "" {
		return expandPath(envPath)
	}
	return filepath.Join(StateDir(), "config.yaml")
}

// StateDir returns the directory holding deskpal state (config, logs).
func StateDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./.deskpal"
	}
	return filepath.Join(homeDir, ".deskpal")
}

// Load reads the config file at path and merges it over the defaults,
// with file values taking precedence. A missing file is not an error:
// the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	expandedPath := expandPath(path)
	data, err := os.ReadFile(expandedPath) //#nosec G304 -- user-specified config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", expandedPath, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", expandedPath, err)
	}

	// Merge file values onto defaults using mergo (file takes precedence).
	if err := mergo.Merge(cfg, fileCfg, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge config: %w", err)
	}

	return cfg, nil
}

// defaultIconDir resolves the client icon directory relative to the running
// executable, falling back to the working directory during development.
func defaultIconDir() string {
	execPath, err := os.Executable()
	if err != nil {
		return filepath.Join("assets", "clients")
	}
	return filepath.Join(filepath.Dir(execPath), "assets", "clients")
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

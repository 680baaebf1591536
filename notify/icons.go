package notify

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// IconResolver maps a caller's declared client identity to an optional
// decorative image path. Resolution degrades silently: a missing alias or
// asset is a normal outcome, never an error.
type IconResolver struct {
	dir     string
	aliases map[string]string
	logger  zerolog.Logger
}

// NewIconResolver creates a resolver over the given asset directory and
// client alias table. The table is consulted read-only and must not be
// mutated after construction.
func NewIconResolver(dir string, aliases map[string]string, logger zerolog.Logger) *IconResolver {
	return &IconResolver{
		dir:     dir,
		aliases: aliases,
		logger:  logger.With().Str("component", "icon_resolver").Logger(),
	}
}

// ContentImageForClient resolves the icon path for a client name, or ""
// when no icon applies. The name is normalized, matched exactly against the
// alias table, then by substring; the resolved asset must exist on disk.
func (r *IconResolver) ContentImageForClient(clientName string) string {
	if clientName == "" || r.dir == "" {
		return ""
	}

	normalized := normalizeClientName(clientName)

	iconFile, ok := r.aliases[normalized]
	if !ok {
		// Substring fallback over sorted keys so resolution is deterministic.
		keys := lo.Keys(r.aliases)
		sort.Strings(keys)
		for _, key := range keys {
			if strings.Contains(normalized, key) {
				iconFile = r.aliases[key]
				break
			}
		}
	}
	if iconFile == "" {
		return ""
	}

	iconPath := filepath.Join(r.dir, iconFile)
	if info, err := os.Stat(iconPath); err != nil || info.IsDir() {
		r.logger.Debug().Str("client", clientName).Str("path", iconPath).Msg("Icon asset missing; skipping content image")
		return ""
	}
	return iconPath
}

// normalizeClientName lowercases the name and collapses whitespace runs to
// a single separator, matching the alias table's key form.
func normalizeClientName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

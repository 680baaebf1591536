package toolresult

import (
	"strings"

	"github.com/deskpal/deskpal/config"
)

// newlineNormalizer collapses all line-ending variants to a single \n.
// \r\n must come first so it is not consumed as a bare \r.
var newlineNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// isUnsafeControl reports whether r is a control character unsafe for
// downstream line-based parsing. Newline (and tab) are deliberately kept;
// \r never reaches this check because newlines are normalized first.
func isUnsafeControl(r rune) bool {
	switch {
	case r <= 0x08,
		r == 0x0B,
		r == 0x0C,
		r >= 0x0E && r <= 0x1F,
		r == 0x7F:
		return true
	}
	return false
}

func stripUnsafeControls(value string) string {
	return strings.Map(func(r rune) rune {
		if isUnsafeControl(r) {
			return -1
		}
		return r
	}, value)
}

// truncate caps value at maxLength user-perceived characters (runes), so a
// multi-byte character is never split mid-sequence.
func truncate(value string, maxLength int) string {
	runes := []rune(value)
	if len(runes) <= maxLength {
		return value
	}
	return string(runes[:maxLength])
}

// SanitizeText normalizes newlines, strips unsafe control characters, and
// truncates to maxLength runes. Changed reports whether the final value
// differs from the raw input in any way, not just whether it was truncated.
func SanitizeText(value string, maxLength int) SanitizeResult {
	normalized := newlineNormalizer.Replace(value)
	cleaned := stripUnsafeControls(normalized)
	truncated := truncate(cleaned, maxLength)

	return SanitizeResult{
		Value:   truncated,
		Changed: truncated != value,
	}
}

// SanitizeInput applies the per-field limits to raw tool input and reports
// whether any field was modified. A missing title is defaulted to
// defaultTitle, but defaulting alone does not count as sanitization; only
// a caller-supplied title that changed sets the flag.
func SanitizeInput(input Input, limits config.SanitizeLimits, defaultTitle string) Sanitized {
	titleText := defaultTitle
	if input.Title != nil {
		titleText = *input.Title
	}
	sanitizedTitle := SanitizeText(titleText, limits.Title)
	sanitizedMessage := SanitizeText(input.Message, limits.Message)

	sanitized := false
	if input.Title != nil && sanitizedTitle.Changed {
		sanitized = true
	}
	if sanitizedMessage.Changed {
		sanitized = true
	}

	var actions []string
	if input.Actions != nil {
		limitedActions := input.Actions
		if len(limitedActions) > limits.MaxActions {
			limitedActions = limitedActions[:limits.MaxActions]
			sanitized = true
		}

		cleanedActions := make([]string, 0, len(limitedActions))
		for _, action := range limitedActions {
			sanitizedAction := SanitizeText(action, limits.Action)
			if sanitizedAction.Changed {
				sanitized = true
			}
			if sanitizedAction.Value == "" {
				// An action whose label cleans away entirely is unusable.
				sanitized = true
				continue
			}
			cleanedActions = append(cleanedActions, sanitizedAction.Value)
		}

		switch {
		case len(cleanedActions) > 0:
			actions = cleanedActions
		case len(input.Actions) > 0:
			// Non-empty list cleaned down to nothing: omit the field
			// entirely rather than deliver an empty dropdown.
			sanitized = true
		}
	}

	var dropdownLabel string
	if input.DropdownLabel != nil {
		sanitizedDropdownLabel := SanitizeText(*input.DropdownLabel, limits.DropdownLabel)
		if sanitizedDropdownLabel.Changed {
			sanitized = true
		}
		dropdownLabel = sanitizedDropdownLabel.Value
	}

	return Sanitized{
		Options: Options{
			Message:       sanitizedMessage.Value,
			Title:         sanitizedTitle.Value,
			Actions:       actions,
			DropdownLabel: dropdownLabel,
			Reply:         input.Reply,
			Timeout:       input.Timeout,
		},
		Sanitized: sanitized,
	}
}

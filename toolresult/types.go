// Package toolresult implements the input sanitization and output payload
// construction for the send_notification tool: untrusted agent-supplied
// text in, schema-conformant success/error payloads out, rendered both as
// structured data and as the legacy line-based text form.
package toolresult

// Status literals for Output.Status.
const (
	StatusSent  = "sent"
	StatusError = "error"
)

// Input is the raw send_notification tool input as supplied by the caller.
// Pointer fields distinguish "omitted" from "explicitly empty", which the
// sanitizer's change tracking depends on.
type Input struct {
	Message       string   `json:"message"`
	Title         *string  `json:"title,omitempty"`
	Actions       []string `json:"actions,omitempty"`
	DropdownLabel *string  `json:"dropdownLabel,omitempty"`
	Reply         bool     `json:"reply,omitempty"`
	Timeout       float64  `json:"timeout,omitempty"`
}

// Options is the cleaned notification request handed to the delivery layer.
type Options struct {
	Message       string
	Title         string
	Actions       []string
	DropdownLabel string
	Reply         bool
	Timeout       float64
}

// Sanitized bundles the cleaned options with the aggregate sanitized flag.
type Sanitized struct {
	Options   Options
	Sanitized bool
}

// SanitizeResult is a cleaned field value plus whether cleaning altered it.
type SanitizeResult struct {
	Value   string
	Changed bool
}

// Output is the externally visible send_notification result contract.
// It is rendered two ways (structured and legacy text) without re-deriving
// any value, so both renderings agree on every field.
type Output struct {
	Status         string `json:"status"`
	Title          string `json:"title,omitempty"`
	Message        string `json:"message,omitempty"`
	Response       string `json:"response,omitempty"`
	ActivationType string `json:"activationType,omitempty"`
	Reply          string `json:"reply,omitempty"`
	Error          string `json:"error,omitempty"`
	Sanitized      bool   `json:"sanitized,omitempty"`
}

// ErrorContext carries the sanitized request context into error payloads.
type ErrorContext struct {
	Title     string
	Message   string
	Sanitized bool
}

package toolresult

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/deskpal/deskpal/config"
	"github.com/deskpal/deskpal/notify"
)

// legacyFieldOrder is the stable field ordering for the backward-compatible
// line-based text rendering.
var legacyFieldOrder = []string{
	"status",
	"title",
	"message",
	"response",
	"activationType",
	"reply",
	"error",
	"sanitized",
}

// BuildSuccess builds the canonical success payload for send_notification.
func BuildSuccess(title, message string, result notify.Result, sanitized bool) Output {
	return Output{
		Status:         StatusSent,
		Title:          title,
		Message:        message,
		Response:       result.Response,
		ActivationType: result.ActivationType,
		Reply:          result.Reply,
		Sanitized:      sanitized,
	}
}

// BuildError builds the canonical error payload for send_notification.
// The error text is reduced to a single sanitized string bounded by the
// message limit, so a pathological error cannot violate the size contract.
func BuildError(err error, context ErrorContext, limits config.SanitizeLimits) Output {
	return Output{
		Status:    StatusError,
		Title:     context.Title,
		Message:   context.Message,
		Error:     toErrorMessage(err, limits),
		Sanitized: context.Sanitized,
	}
}

func toErrorMessage(err error, limits config.SanitizeLimits) string {
	rawMessage := "unknown error"
	if err != nil {
		rawMessage = err.Error()
	}
	cleaned := SanitizeText(rawMessage, limits.Message).Value
	if cleaned == "" {
		return "unknown error"
	}
	return cleaned
}

// Validate checks the payload against the output contract: status is one of
// the two literals, error payloads carry no interaction fields, and success
// payloads carry no error.
func (o Output) Validate() error {
	switch o.Status {
	case StatusSent:
		if o.Error != "" {
			return fmt.Errorf("sent payload must not carry an error field")
		}
	case StatusError:
		if o.Error == "" {
			return fmt.Errorf("error payload must carry an error field")
		}
		if o.Response != "" || o.ActivationType != "" || o.Reply != "" {
			return fmt.Errorf("error payload must not carry interaction fields")
		}
	default:
		return fmt.Errorf("invalid status %q", o.Status)
	}
	return nil
}

// legacyValue returns the value for a legacy text field and whether it is
// present. Status is always present; every other field is skipped when empty.
func (o Output) legacyValue(key string) (any, bool) {
	switch key {
	case "status":
		return o.Status, true
	case "title":
		return o.Title, o.Title != ""
	case "message":
		return o.Message, o.Message != ""
	case "response":
		return o.Response, o.Response != ""
	case "activationType":
		return o.ActivationType, o.ActivationType != ""
	case "reply":
		return o.Reply, o.Reply != ""
	case "error":
		return o.Error, o.Error != ""
	case "sanitized":
		return o.Sanitized, o.Sanitized
	}
	return nil, false
}

// encodeLegacyValue renders a value as a single-line JSON literal so that
// embedded newlines, quotes, and colons can never be mistaken for a field
// delimiter by a line-based consumer.
func encodeLegacyValue(value any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// FormatLegacyText renders the payload as parser-safe line-based text,
// one `key: <json-encoded value>` pair per line in fixed field order.
func FormatLegacyText(payload Output) string {
	lines := lo.FilterMap(legacyFieldOrder, func(key string, _ int) (string, bool) {
		value, present := payload.legacyValue(key)
		if !present {
			return "", false
		}
		encoded, err := encodeLegacyValue(value)
		if err != nil {
			return "", false
		}
		return fmt.Sprintf("%s: %s", key, encoded), true
	})
	return strings.Join(lines, "\n")
}

// Package notify delivers native desktop notifications and normalizes how
// the user interacted with them. The delivery mechanism is abstracted
// behind the Transmitter interface with two concrete variants: the branded
// terminal-notifier bundle on macOS, and a best-effort system fallback
// everywhere else. The variant is selected once at startup.
package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deskpal/deskpal/config"
)

// Request is a fully-resolved notification delivery request. Callers pass
// the same shape regardless of which mechanism is active; each Transmitter
// decides internally whether actions, reply input, or the content image are
// honored, ignored, or substituted.
type Request struct {
	Title          string
	Message        string
	TimeoutSeconds float64
	Actions        []string
	DropdownLabel  string
	Reply          bool
	ContentImage   string
}

// Result is the normalized outcome of a delivered notification.
// Response is always set: either a literal sentinel ("timeout", "closed")
// or the action label the user selected. Reply is set only when text input
// was enabled and the user submitted text. ActivationType classifies how
// the interaction ended; it is descriptive, not a strict enum.
type Result struct {
	Response       string
	Reply          string
	ActivationType string
}

// Transmitter is the capability interface over the platform notification
// mechanism. Send suspends until the user interacts or the timeout elapses;
// each call delivers exactly one notification. Mechanism-specific failures
// are reduced to a single wrapped error with a human-readable message.
type Transmitter interface {
	Send(ctx context.Context, req Request) (Result, error)
}

// SelectTransmitter picks the delivery mechanism for this process. The
// branded notifier bundle is preferred when its executable is discoverable;
// otherwise the system fallback is used. The choice is made once and never
// re-resolved per call.
func SelectTransmitter(cfg *config.Config, logger zerolog.Logger) Transmitter {
	if path := FindNotifierPath(cfg.Notifier.Path); path != "" {
		logger.Info().Str("path", path).Msg("Using branded terminal-notifier transmitter")
		return NewTerminalNotifier(path, logger)
	}
	logger.Info().Msg("Branded notifier not found; using system notification fallback")
	return NewBeeepNotifier(logger)
}

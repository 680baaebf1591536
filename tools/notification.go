package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deskpal/deskpal/config"
	"github.com/deskpal/deskpal/notify"
	"github.com/deskpal/deskpal/toolresult"
)

// RegisterNotificationTools registers the send_notification tool.
//
// The handler runs the full pipeline: sanitize input, resolve the client
// icon and timeout, deliver through the transmitter, and build the output
// payload. Delivery failures come back as an error-status payload, not as
// a handler error: the only errors returned to the dispatcher are protocol
// problems (undecodable arguments).
func (r *Registry) RegisterNotificationTools(transmitter notify.Transmitter, icons *notify.IconResolver, cfg *config.Config) {
	r.logger.Info().Msg("Registering notification tools in registry")

	r.Register("send_notification", func(ctx context.Context, clientName string, args json.RawMessage) (any, error) {
		var input toolresult.Input
		if err := json.Unmarshal(args, &input); err != nil {
			return nil, fmt.Errorf("failed to unmarshal arguments: %w", err)
		}

		sanitized := toolresult.SanitizeInput(input, cfg.Limits, cfg.Notifier.DefaultTitle)
		opts := sanitized.Options
		if sanitized.Sanitized {
			r.logger.Debug().Str("client", clientName).Msg("Notification input required sanitization")
		}

		req := notify.Request{
			Title:   opts.Title,
			Message: opts.Message,
			TimeoutSeconds: notify.ResolveTimeout(notify.TimeoutOptions{
				Timeout: opts.Timeout,
				Reply:   opts.Reply,
				Actions: opts.Actions,
			}, cfg.Timeouts),
			Actions:       opts.Actions,
			DropdownLabel: opts.DropdownLabel,
			Reply:         opts.Reply,
			ContentImage:  icons.ContentImageForClient(clientName),
		}

		result, err := transmitter.Send(ctx, req)
		if err != nil {
			r.logger.Warn().Err(err).Str("client", clientName).Msg("Notification delivery failed")
			return toolresult.BuildError(err, toolresult.ErrorContext{
				Title:     opts.Title,
				Message:   opts.Message,
				Sanitized: sanitized.Sanitized,
			}, cfg.Limits), nil
		}

		r.logger.Info().
			Str("client", clientName).
			Str("response", result.Response).
			Str("activationType", result.ActivationType).
			Msg("Notification resolved")
		return toolresult.BuildSuccess(opts.Title, opts.Message, result, sanitized.Sanitized), nil
	})
}

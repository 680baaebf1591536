package notify

import (
	"context"
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"
)

// BeeepNotifier is the fallback transmitter used when the branded notifier
// bundle is unavailable. It delivers through the platform's stock
// notification facility (notify-send, toast, NSUserNotification) and cannot
// observe user interaction: action buttons and reply input are ignored, and
// the result reports the delivery itself rather than an interaction.
type BeeepNotifier struct {
	logger zerolog.Logger
}

// NewBeeepNotifier creates the fallback transmitter.
func NewBeeepNotifier(logger zerolog.Logger) *BeeepNotifier {
	return &BeeepNotifier{
		logger: logger.With().Str("component", "beeep_notifier").Logger(),
	}
}

// Send posts the notification fire-and-forget. The content image is reused
// as the notification icon where the platform supports one.
func (b *BeeepNotifier) Send(ctx context.Context, req Request) (Result, error) {
	if len(req.Actions) > 0 || req.Reply {
		b.logger.Debug().Int("actions", len(req.Actions)).Bool("reply", req.Reply).Msg("Fallback transmitter ignores interaction features")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("notification delivery failed: %w", err)
	}

	if err := beeep.Notify(req.Title, req.Message, req.ContentImage); err != nil {
		b.logger.Warn().Err(err).Msg("Fallback notification failed")
		return Result{}, fmt.Errorf("notification delivery failed: %w", err)
	}

	b.logger.Debug().Str("title", req.Title).Msg("Fallback notification delivered")
	return Result{
		Response:       "closed",
		ActivationType: "delivered",
	}, nil
}

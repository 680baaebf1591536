package notify

import "github.com/deskpal/deskpal/config"

// TimeoutOptions is the subset of the notification shape that drives
// timeout selection.
type TimeoutOptions struct {
	Timeout float64
	Reply   bool
	Actions []string
}

// ResolveTimeout returns the wait time in seconds for a notification.
// An explicit caller-supplied timeout always wins and is not clamped.
// Otherwise the tier precedence is reply > actions > simple; a request with
// both reply and actions gets the reply tier.
func ResolveTimeout(options TimeoutOptions, tiers config.TimeoutTiers) float64 {
	if options.Timeout > 0 {
		return options.Timeout
	}
	if options.Reply {
		return tiers.Reply
	}
	if len(options.Actions) > 0 {
		return tiers.Actions
	}
	return tiers.Simple
}

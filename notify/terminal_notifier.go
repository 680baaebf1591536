package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// activationRecord is the JSON document the terminal-notifier fork writes
// to stdout when invoked with -json.
type activationRecord struct {
	ActivationType  string `json:"activationType"`
	ActivationValue string `json:"activationValue"`
	ActivationAt    string `json:"activationAt"`
	DeliveredAt     string `json:"deliveredAt"`
}

// TerminalNotifier delivers notifications through the branded
// terminal-notifier app bundle and waits for the user's interaction.
type TerminalNotifier struct {
	path   string
	logger zerolog.Logger
}

// NewTerminalNotifier creates a transmitter invoking the executable at path.
func NewTerminalNotifier(path string, logger zerolog.Logger) *TerminalNotifier {
	return &TerminalNotifier{
		path:   path,
		logger: logger.With().Str("component", "terminal_notifier").Logger(),
	}
}

// Send posts one notification and blocks until the notifier process
// reports the interaction outcome or ctx is canceled.
func (t *TerminalNotifier) Send(ctx context.Context, req Request) (Result, error) {
	args := []string{
		"-title", req.Title,
		"-message", req.Message,
		"-timeout", strconv.Itoa(timeoutArg(req.TimeoutSeconds)),
		"-json",
	}
	if len(req.Actions) > 0 {
		args = append(args, "-actions", strings.Join(req.Actions, ","))
		if req.DropdownLabel != "" && len(req.Actions) > 1 {
			args = append(args, "-dropdownLabel", req.DropdownLabel)
		}
	}
	if req.Reply {
		args = append(args, "-reply")
	}
	if req.ContentImage != "" {
		args = append(args, "-contentImage", req.ContentImage)
	}

	t.logger.Debug().Str("title", req.Title).Int("actions", len(req.Actions)).Bool("reply", req.Reply).Msg("Invoking notifier")

	cmd := exec.CommandContext(ctx, t.path, args...) //#nosec G204 -- notifier path is resolved at startup, not caller input
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		t.logger.Warn().Err(err).Str("stderr", stderr.String()).Msg("Notifier process failed")
		return Result{}, fmt.Errorf("notification delivery failed: %w", err)
	}

	var record activationRecord
	if err := json.Unmarshal(bytes.TrimSpace(stdout.Bytes()), &record); err != nil {
		t.logger.Warn().Err(err).Str("stdout", stdout.String()).Msg("Notifier produced unparseable output")
		return Result{}, fmt.Errorf("notification delivery failed: unreadable notifier output: %w", err)
	}

	result := normalizeActivation(record)
	t.logger.Debug().Str("response", result.Response).Str("activationType", result.ActivationType).Msg("Notification resolved")
	return result, nil
}

// normalizeActivation reduces the notifier's activation record to the
// uniform Result shape. Action clicks surface the selected label as the
// response; replies carry the typed text separately; everything else maps
// to the activation type sentinel.
func normalizeActivation(record activationRecord) Result {
	result := Result{
		Response:       record.ActivationType,
		ActivationType: record.ActivationType,
	}

	switch record.ActivationType {
	case "actionClicked":
		if record.ActivationValue != "" {
			result.Response = record.ActivationValue
		}
	case "replied":
		result.Reply = record.ActivationValue
	}

	if result.Response == "" {
		result.Response = "closed"
	}
	return result
}

// timeoutArg converts the resolved timeout to the whole seconds the
// notifier binary accepts, rounding up so short fractional timeouts are
// not truncated to zero (which would mean "wait forever").
func timeoutArg(seconds float64) int {
	arg := int(math.Ceil(seconds))
	if arg < 1 {
		arg = 1
	}
	return arg
}

// Package telephony places outbound voice-agent calls through the
// ElevenLabs conversational AI API.
package telephony

import (
	"context"

	"callpilot/models"
)

// Dispatcher places one outbound call. Adapter-level failures (timeout,
// non-2xx, malformed body) are converted into a failed DispatchOutcome; the
// method never returns a Go error, so fan-out callers cannot be disrupted by
// a single dispatch.
type Dispatcher interface {
	Dispatch(ctx context.Context, phone, prompt string) models.DispatchOutcome
}

// Package briefing turns a raw caller objective into the instruction text a
// voice agent is briefed with before an outbound call.
package briefing

import "context"

// Service refines an objective into an agent briefing. Refinement is
// mandatory for a well-formed call: failures propagate to the caller instead
// of dispatching an unrefined objective.
type Service interface {
	Refine(ctx context.Context, objective string) (string, error)
}

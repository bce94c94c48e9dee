package swarm

import "fmt"

// BriefingError marks a failed objective refinement. Refinement is mandatory
// for every dispatched prompt, so this fails the whole request.
type BriefingError struct {
	Message string
}

func (e *BriefingError) Error() string {
	return fmt.Sprintf("briefingError: %s", e.Message)
}

func NewBriefingError(msg string) error {
	return &BriefingError{Message: msg}
}

// DispatchError marks a failed single-call dispatch (used by the single-call
// path; swarm dispatch failures live inside their candidate's outcome).
type DispatchError struct {
	Message string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatchError: %s", e.Message)
}

func NewDispatchError(msg string) error {
	return &DispatchError{Message: msg}
}

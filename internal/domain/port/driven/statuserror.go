package driven

import "fmt"

// StatusError reports a non-success, non-401 HTTP status from the tracker.
// It is recoverable: callers surface it as the affected ticket's status text
// instead of aborting the run.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

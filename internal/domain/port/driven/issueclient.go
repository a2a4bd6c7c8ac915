package driven

import (
	"context"
	"errors"
)

// ErrUnauthorized is returned by IssueClient operations when the tracker
// rejects the request with HTTP 401. Unlike other fetch failures it is
// fatal to the whole run.
var ErrUnauthorized = errors.New("authentication failed")

// IssueClient defines the driven port for resolving ticket statuses
// against the issue tracker.
type IssueClient interface {
	// IssueStatus fetches the issue identified by key and returns its
	// composed status text ("status" or "status: resolution").
	// Returns ErrUnauthorized on HTTP 401; any other failure is an
	// ordinary error the caller may degrade to a per-row placeholder.
	IssueStatus(ctx context.Context, key string) (string, error)

	// Validate probes the tracker's "who am I" endpoint with the client's
	// credentials. A nil return means the credentials are accepted.
	Validate(ctx context.Context) error
}

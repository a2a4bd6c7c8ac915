package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/ericfisherdev/jiracheck/internal/domain/model"
	"github.com/ericfisherdev/jiracheck/internal/domain/port/driven"
)

// ProgressFunc is invoked before each ticket fetch with the 1-based index,
// the total ticket count and the ticket about to be checked.
type ProgressFunc func(index, total int, ticket string)

// CheckService resolves ticket statuses one at a time, in order.
type CheckService struct {
	issues driven.IssueClient
}

// NewCheckService creates a CheckService fetching through issues.
func NewCheckService(issues driven.IssueClient) *CheckService {
	return &CheckService{issues: issues}
}

// Statuses fetches the status of every ticket against baseURL and returns
// one result row per ticket, in input order. Recoverable fetch failures
// become "Error: ..." status text on the affected row; HTTP 401 and context
// cancellation abort the run. progress may be nil.
func (s *CheckService) Statuses(ctx context.Context, baseURL string, tickets []string, progress ProgressFunc) ([]model.TicketResult, error) {
	results := make([]model.TicketResult, 0, len(tickets))

	for i, ticket := range tickets {
		if progress != nil {
			progress(i+1, len(tickets), ticket)
		}

		status, err := s.issues.IssueStatus(ctx, ticket)
		if err != nil {
			var statusErr *driven.StatusError
			switch {
			case errors.Is(err, driven.ErrUnauthorized):
				return nil, err
			case ctx.Err() != nil:
				return nil, ctx.Err()
			case errors.As(err, &statusErr):
				status = fmt.Sprintf("Error: %d", statusErr.Code)
			default:
				status = fmt.Sprintf("Error: %v", err)
			}
		}

		results = append(results, model.TicketResult{
			Ticket: ticket,
			Status: status,
			Link:   fmt.Sprintf("%s/browse/%s", baseURL, ticket),
		})
	}

	return results, nil
}

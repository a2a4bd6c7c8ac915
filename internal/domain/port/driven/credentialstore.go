package driven

import (
	"context"

	"github.com/ericfisherdev/jiracheck/internal/domain/model"
)

// CredentialStore defines the driven port for credential persistence,
// keyed by tracker base URL. Implementations must restrict the backing
// file to owner-only access; credentials must never be readable by other
// users on the machine.
type CredentialStore interface {
	// Get retrieves the credential pair for the given server URL.
	// Returns a zero Credential and nil error if none is stored.
	Get(ctx context.Context, serverURL string) (model.Credential, error)

	// Set stores or replaces the credential pair for cred.ServerURL.
	Set(ctx context.Context, cred model.Credential) error

	// Delete removes the credential pair for the given server URL.
	// Deleting an absent record is not an error.
	Delete(ctx context.Context, serverURL string) error
}

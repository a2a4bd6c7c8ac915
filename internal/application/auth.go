package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ericfisherdev/jiracheck/internal/domain/model"
	"github.com/ericfisherdev/jiracheck/internal/domain/port/driven"
)

// User-input errors. They abort the current resolution attempt; the caller
// decides whether to retry.
var (
	ErrEmptyUsername = errors.New("username cannot be empty")
	ErrEmptyToken    = errors.New("token cannot be empty")
)

// DefaultAuthAttempts bounds interactive credential resolution before the
// caller gives up.
const DefaultAuthAttempts = 3

// NeedsAuth reports whether credential resolution must run before fetching.
// noAuth is honoured only for servers other than the default one: the
// default tracker always requires authentication.
func NeedsAuth(noAuth bool, serverURL, defaultServerURL string) bool {
	return !noAuth || serverURL == defaultServerURL
}

// ClientFactory builds an IssueClient bound to a candidate credential pair,
// used to probe the tracker before the pair is trusted.
type ClientFactory func(username, token string) driven.IssueClient

// AuthService resolves the credential pair for one tracker server: cached
// credentials are validated against the tracker and falling back to an
// interactive prompt when no valid token remains.
type AuthService struct {
	store     driven.CredentialStore
	prompter  driven.Prompter
	clients   ClientFactory
	notices   io.Writer
	storePath string
}

// NewAuthService creates an AuthService. notices receives user-facing
// progress messages; storePath is named in the save confirmation.
func NewAuthService(store driven.CredentialStore, prompter driven.Prompter, clients ClientFactory, notices io.Writer, storePath string) *AuthService {
	return &AuthService{
		store:     store,
		prompter:  prompter,
		clients:   clients,
		notices:   notices,
		storePath: storePath,
	}
}

// Resolve returns a credential pair for serverURL. A cached token is reused
// only when providedUsername is absent or matches the cached username, and
// only after a successful probe against the tracker; any probe failure
// discards the cached token and falls through to prompting. Empty
// interactive input returns ErrEmptyUsername or ErrEmptyToken.
func (s *AuthService) Resolve(ctx context.Context, serverURL, providedUsername string) (model.Credential, error) {
	saved, err := s.store.Get(ctx, serverURL)
	if err != nil {
		return model.Credential{}, err
	}

	username := providedUsername
	if username == "" {
		username = saved.Username
	}

	var token string
	if saved.Token != "" && (providedUsername == "" || providedUsername == saved.Username) {
		fmt.Fprintf(s.notices, "Using saved credentials for %s at %s\n", username, serverURL)

		var statusErr *driven.StatusError
		switch err := s.clients(username, saved.Token).Validate(ctx); {
		case err == nil:
			token = saved.Token
		case ctx.Err() != nil:
			return model.Credential{}, ctx.Err()
		case errors.As(err, &statusErr):
			fmt.Fprintln(s.notices, "Saved token appears to be invalid. Please enter a new one.")
		default:
			// Network failures count as invalidation, never as fatal errors.
			fmt.Fprintf(s.notices, "Error testing saved token: %v\n", err)
		}
	}

	if token == "" {
		cred, err := s.promptForCredentials(ctx, serverURL, username)
		if err != nil {
			return model.Credential{}, err
		}
		return cred, nil
	}

	return model.Credential{ServerURL: serverURL, Username: username, Token: token}, nil
}

// ResolveWithRetry calls Resolve up to attempts times, retrying only when
// the user entered an empty username or token. It returns a zero Credential
// and a nil error once every attempt has been rejected; the caller decides
// whether proceeding unauthenticated is acceptable.
func (s *AuthService) ResolveWithRetry(ctx context.Context, serverURL, providedUsername string, attempts int) (model.Credential, error) {
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return model.Credential{}, err
		}
		if attempt > 1 {
			fmt.Fprintf(s.notices, "Authentication attempt %d/%d\n", attempt, attempts)
		}

		cred, err := s.Resolve(ctx, serverURL, providedUsername)
		switch {
		case err == nil:
			return cred, nil
		case errors.Is(err, ErrEmptyUsername) || errors.Is(err, ErrEmptyToken):
			fmt.Fprintf(s.notices, "Error: %v\n", err)
		default:
			return model.Credential{}, err
		}
	}
	return model.Credential{}, nil
}

func (s *AuthService) promptForCredentials(ctx context.Context, serverURL, username string) (model.Credential, error) {
	if username == "" {
		entered, err := s.prompter.Line(fmt.Sprintf("Enter your JIRA username for %s: ", serverURL))
		if err != nil {
			return model.Credential{}, err
		}
		// An interrupt only cancels the context; the blocking read returns
		// on the next keypress. Re-check after every prompt.
		if err := ctx.Err(); err != nil {
			return model.Credential{}, err
		}
		if strings.TrimSpace(entered) == "" {
			return model.Credential{}, ErrEmptyUsername
		}
		username = entered
	}

	token, err := s.prompter.Secret(fmt.Sprintf("Enter your JIRA API token for %s: ", username))
	if err != nil {
		return model.Credential{}, err
	}
	if err := ctx.Err(); err != nil {
		return model.Credential{}, err
	}
	if strings.TrimSpace(token) == "" {
		return model.Credential{}, ErrEmptyToken
	}

	cred := model.Credential{ServerURL: serverURL, Username: username, Token: token}

	choice, err := s.prompter.Line("Save this token for future use? (y/n): ")
	if err != nil {
		return model.Credential{}, err
	}
	if err := ctx.Err(); err != nil {
		return model.Credential{}, err
	}
	if strings.ToLower(strings.TrimSpace(choice)) == "y" {
		if err := s.store.Set(ctx, cred); err != nil {
			return model.Credential{}, err
		}
		fmt.Fprintf(s.notices, "Token saved to %s\n", s.storePath)
	}

	return cred, nil
}

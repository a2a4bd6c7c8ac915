package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ericfisherdev/jiracheck/internal/domain/model"
	"github.com/ericfisherdev/jiracheck/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CredentialStore = (*CredentialRepo)(nil)

// CredentialRepo is the SQLite implementation of the CredentialStore port.
// Records are keyed by tracker base URL; saving overwrites any existing pair
// for the same server.
type CredentialRepo struct {
	db *DB
}

// NewCredentialRepo creates a new CredentialRepo backed by db.
func NewCredentialRepo(db *DB) *CredentialRepo {
	return &CredentialRepo{db: db}
}

// Get retrieves the credential pair for the given server URL.
// Returns a zero Credential and nil error when no record exists.
func (r *CredentialRepo) Get(ctx context.Context, serverURL string) (model.Credential, error) {
	const query = `SELECT username, token, updated_at FROM credentials WHERE server_url = ?`

	var cred model.Credential
	var updatedAt string
	err := r.db.Reader.QueryRowContext(ctx, query, serverURL).Scan(&cred.Username, &cred.Token, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Credential{}, nil
	}
	if err != nil {
		return model.Credential{}, fmt.Errorf("get credential for %q: %w", serverURL, err)
	}

	cred.ServerURL = serverURL
	cred.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return model.Credential{}, fmt.Errorf("parse updated_at for %q: %w", serverURL, err)
	}
	return cred, nil
}

// Set stores or replaces the credential pair for cred.ServerURL.
func (r *CredentialRepo) Set(ctx context.Context, cred model.Credential) error {
	const query = `INSERT OR REPLACE INTO credentials (server_url, username, token, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)`

	_, err := r.db.Writer.ExecContext(ctx, query, cred.ServerURL, cred.Username, cred.Token)
	if err != nil {
		return fmt.Errorf("set credential for %q: %w", cred.ServerURL, err)
	}
	return nil
}

// Delete removes the credential pair for the given server URL.
func (r *CredentialRepo) Delete(ctx context.Context, serverURL string) error {
	const query = `DELETE FROM credentials WHERE server_url = ?`

	_, err := r.db.Writer.ExecContext(ctx, query, serverURL)
	if err != nil {
		return fmt.Errorf("delete credential for %q: %w", serverURL, err)
	}
	return nil
}

// parseTime parses SQLite timestamp strings, which CURRENT_TIMESTAMP emits
// as "2006-01-02 15:04:05" in UTC.
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.RFC3339, s)
}

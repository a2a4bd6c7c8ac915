package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"testing"
)

// setupTestDB opens a shared in-memory database named after the test, so
// parallel tests never observe each other's rows. Reader and writer reach
// the same store through cache=shared. No journal_mode pragma here: WAL
// has no meaning for in-memory databases.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// The test name lands in the DSN filename slot; escape it so slashes
	// from subtest names cannot alter the URI.
	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)",
		url.PathEscape(t.Name()),
	)

	db := &DB{
		Writer: openTestConn(t, dsn, 1),
		Reader: openTestConn(t, dsn, 4),
		path:   dsn,
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := RunMigrations(db.Writer); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return db
}

func openTestConn(t *testing.T, dsn string, maxConns int) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	conn.SetMaxOpenConns(maxConns)
	if err := conn.PingContext(context.Background()); err != nil {
		t.Fatalf("ping test db: %v", err)
	}

	return conn
}

package sqlite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"team-membership/internal/storage"
)

// Open connects to the database file at path.
func Open(path string) (*storage.Storage, error) {
	const op = "storage.sqlite.Open"

	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%s: storage path is required", op)
	}

	db, err := sqlx.Connect("sqlite", DSN(path))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open db: %w", op, err)
	}

	// a single writer connection keeps SQLite from returning SQLITE_BUSY under load
	db.SetMaxOpenConns(1)

	return storage.New(db, DetectConflict), nil
}

func DSN(path string) string {
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

// DetectConflict recognises unique and primary key violations. SQLite names
// the offending column rather than the constraint, e.g. "teammates.email".
func DetectConflict(err error) (string, bool) {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return "", false
	}

	switch sqliteErr.Code() {
	case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
	default:
		return "", false
	}

	msg := sqliteErr.Error()
	const marker = "constraint failed: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		cols, _, _ := strings.Cut(msg[i+len(marker):], " (")
		return strings.TrimSpace(cols), true
	}
	return msg, true
}

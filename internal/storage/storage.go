// Package storage is the transactional boundary to the durable store.
// Drivers plug in a ConflictDetector so uniqueness violations surface as
// *ConflictError regardless of the engine.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrUniqueViolation matches every *ConflictError.
var ErrUniqueViolation = errors.New("storage: unique constraint violation")

// ConflictError is raised when the engine rejects a write on a unique constraint.
type ConflictError struct {
	Constraint string
	Err        error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("storage: unique constraint %q violated: %v", e.Constraint, e.Err)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrUniqueViolation
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

// ConflictDetector reports whether err is a driver-level uniqueness violation
// and, if so, which constraint was hit.
type ConflictDetector func(err error) (constraint string, ok bool)

type Storage struct {
	db     *sqlx.DB
	detect ConflictDetector
}

func New(db *sqlx.DB, detect ConflictDetector) *Storage {
	return &Storage{db: db, detect: detect}
}

func (s *Storage) GetDB() *sqlx.DB {
	return s.db
}

// InTx runs fn inside a single transaction. The transaction commits when fn
// returns nil and rolls back otherwise.
func (s *Storage) InTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	const op = "storage.InTx"

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return s.classify(err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, s.classify(err))
	}

	return nil
}

// classify turns a driver uniqueness error into *ConflictError and leaves
// everything else untouched.
func (s *Storage) classify(err error) error {
	if s.detect == nil || errors.Is(err, ErrUniqueViolation) {
		return err
	}
	if constraint, ok := s.detect(err); ok {
		return &ConflictError{Constraint: constraint, Err: err}
	}
	return err
}

func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

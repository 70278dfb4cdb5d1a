package postgresql

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"team-membership/internal/config"
	"team-membership/internal/storage"
)

const uniqueViolation = pq.ErrorCode("23505")

func Init(cfg config.PostgresConfig) *storage.Storage {
	const op = "storage.postgresql.Init"

	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		panic(fmt.Sprintf("%s: failed to open db: %v", op, err))
	}

	if err = db.Ping(); err != nil {
		panic(fmt.Sprintf("%s: failed to ping db: %v", op, err))
	}

	return storage.New(db, DetectConflict)
}

// DetectConflict recognises SQLSTATE 23505 and reports the constraint name.
func DetectConflict(err error) (string, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation {
		return "", false
	}
	return pqErr.Constraint, true
}

package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"team-membership/internal/apperrors"
	"team-membership/internal/domain/models"
	"team-membership/internal/storage"
)

// Gateway is the transactional boundary the repositories write and read through.
type Gateway interface {
	InTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

// Validator is run before every write.
type Validator interface {
	Teammate(t *models.Teammate) []apperrors.Violation
	Team(t *models.Team) []apperrors.Violation
}

// uniqueFields maps storage constraint names (postgres) and column paths
// (sqlite) to the entity field they guard.
var uniqueFields = map[string]string{
	"uq_teammates_email": "email",
	"teammates.email":    "email",
}

// conflictFailure converts a storage conflict into a ConflictFailure. value is
// reported only when it is known to be the duplicated one.
func conflictFailure(err error, value string) error {
	var conflict *storage.ConflictError
	if !errors.As(err, &conflict) {
		return err
	}

	field, ok := uniqueFields[conflict.Constraint]
	if !ok {
		field = conflict.Constraint
	}

	return apperrors.NewConflictFailure(field, value, conflict.Constraint, conflict)
}

const insertTeammateQuery = `
	INSERT INTO teammates (id, team_id, name, email, position)
	VALUES (?, ?, ?, ?, ?)`

func insertTeammate(ctx context.Context, tx *sqlx.Tx, t *models.Teammate) error {
	teamID := sql.NullString{String: t.TeamID, Valid: t.TeamID != ""}
	_, err := tx.ExecContext(ctx, tx.Rebind(insertTeammateQuery), t.ID, teamID, t.Name, t.Email, t.Position)
	return err
}

func teamExists(ctx context.Context, tx *sqlx.Tx, teamID string) (bool, error) {
	var count int
	if err := tx.GetContext(ctx, &count, tx.Rebind(`SELECT COUNT(*) FROM teams WHERE id = ?`), teamID); err != nil {
		return false, err
	}
	return count > 0, nil
}

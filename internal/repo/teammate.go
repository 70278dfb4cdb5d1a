package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"team-membership/internal/apperrors"
	"team-membership/internal/domain/models"
)

type TeammateRepo struct {
	storage   Gateway
	validator Validator
}

func NewTeammateRepo(storage Gateway, validator Validator) *TeammateRepo {
	return &TeammateRepo{
		storage:   storage,
		validator: validator,
	}
}

// Persist validates t and stores it in one transaction. When t names a team
// it is appended after the team's current members. On success t carries its
// generated id and position.
func (r *TeammateRepo) Persist(ctx context.Context, t *models.Teammate) error {
	const op = "repo.teammate.Persist"

	if violations := r.validator.Teammate(t); len(violations) > 0 {
		return fmt.Errorf("%s: %w", op, apperrors.NewValidationFailure(apperrors.ErrInvalidTeammate, violations))
	}

	candidate := *t
	candidate.ID = uuid.NewString()
	candidate.Position = 0

	err := r.storage.InTx(ctx, func(tx *sqlx.Tx) error {
		if candidate.TeamID != "" {
			exists, err := teamExists(ctx, tx, candidate.TeamID)
			if err != nil {
				return err
			}
			if !exists {
				return apperrors.TeamNotFound(candidate.TeamID)
			}

			query := `SELECT COALESCE(MAX(position) + 1, 0) FROM teammates WHERE team_id = ?`
			if err := tx.GetContext(ctx, &candidate.Position, tx.Rebind(query), candidate.TeamID); err != nil {
				return err
			}
		}

		return insertTeammate(ctx, tx, &candidate)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, conflictFailure(err, t.Email))
	}

	*t = candidate
	return nil
}

// FindByTeamAndEmail returns the teammate of team teamID whose email matches
// exactly. A miss is a NotFoundFailure naming both keys.
func (r *TeammateRepo) FindByTeamAndEmail(ctx context.Context, teamID, email string) (*models.Teammate, error) {
	const op = "repo.teammate.FindByTeamAndEmail"

	query := `
		SELECT id, COALESCE(team_id, '') AS team_id, name, email, position
		FROM teammates
		WHERE team_id = ? AND email = ?`

	var teammate models.Teammate
	err := r.storage.InTx(ctx, func(tx *sqlx.Tx) error {
		return tx.GetContext(ctx, &teammate, tx.Rebind(query), teamID, email)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperrors.TeammateNotFound(teamID, email))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &teammate, nil
}

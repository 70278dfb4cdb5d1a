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

type TeamRepo struct {
	storage   Gateway
	validator Validator
}

func NewTeamRepo(storage Gateway, validator Validator) *TeamRepo {
	return &TeamRepo{
		storage:   storage,
		validator: validator,
	}
}

// Persist validates the team with all of its members and stores them in a
// single transaction, so either every row lands or none does.
func (r *TeamRepo) Persist(ctx context.Context, team *models.Team) error {
	const op = "repo.team.Persist"

	if violations := r.validator.Team(team); len(violations) > 0 {
		return fmt.Errorf("%s: %w", op, apperrors.NewValidationFailure(apperrors.ErrInvalidTeam, violations))
	}

	candidate := models.Team{
		Name:    team.Name,
		Members: make([]models.Teammate, len(team.Members)),
	}
	copy(candidate.Members, team.Members)
	for i := range candidate.Members {
		candidate.Members[i].ID = uuid.NewString()
		candidate.Members[i].Position = i
	}
	candidate.AssignID(uuid.NewString())

	err := r.storage.InTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, tx.Rebind(`INSERT INTO teams (id, name) VALUES (?, ?)`),
			candidate.ID, candidate.Name); err != nil {
			return err
		}

		for i := range candidate.Members {
			if err := insertTeammate(ctx, tx, &candidate.Members[i]); err != nil {
				return fmt.Errorf("member %d: %w", i, err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, conflictFailure(err, ""))
	}

	*team = candidate
	return nil
}

// FindByID returns the team with its members in membership order.
func (r *TeamRepo) FindByID(ctx context.Context, id string) (*models.Team, error) {
	const op = "repo.team.FindByID"

	team := models.Team{Members: []models.Teammate{}}

	err := r.storage.InTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &team, tx.Rebind(`SELECT id, name FROM teams WHERE id = ?`), id); err != nil {
			return err
		}

		query := `
			SELECT id, COALESCE(team_id, '') AS team_id, name, email, position
			FROM teammates
			WHERE team_id = ?
			ORDER BY position`

		return tx.SelectContext(ctx, &team.Members, tx.Rebind(query), id)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperrors.TeamNotFound(id))
		}
		return nil, fmt.Errorf("%s: failed to get team: %w", op, err)
	}

	return &team, nil
}

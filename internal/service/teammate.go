package service

import (
	"context"
	"fmt"
	"log/slog"

	"team-membership/internal/apperrors"
	"team-membership/internal/domain/models"
	"team-membership/internal/lib/logger/sl"
)

type TeammateService struct {
	log       *slog.Logger
	provider  TeammateProvider
	validator TeammateValidator
}

type TeammateProvider interface {
	Persist(ctx context.Context, t *models.Teammate) error
	FindByTeamAndEmail(ctx context.Context, teamID, email string) (*models.Teammate, error)
}

type TeammateValidator interface {
	Teammate(t *models.Teammate) []apperrors.Violation
}

func NewTeammateService(
	log *slog.Logger,
	provider TeammateProvider,
	validator TeammateValidator) *TeammateService {
	return &TeammateService{
		log:       log,
		provider:  provider,
		validator: validator,
	}
}

// AddTeammate persists a new member at the end of team teamID.
func (s *TeammateService) AddTeammate(ctx context.Context, teamID string, params models.TeammateParams) (*models.Teammate, error) {
	const op = "service.teammate.AddTeammate"

	log := s.log.With(
		slog.String("op", op),
		slog.String("team_id", teamID),
	)

	log.Info("attempting to add teammate")

	params.TeamID = teamID
	teammate := models.NewTeammate(params)

	if err := s.provider.Persist(ctx, teammate); err != nil {
		log.Warn("failed to add teammate", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("teammate added successfully", slog.String("teammate_id", teammate.ID))

	return teammate, nil
}

func (s *TeammateService) FindTeammate(ctx context.Context, teamID, email string) (*models.Teammate, error) {
	const op = "service.teammate.FindTeammate"

	log := s.log.With(
		slog.String("op", op),
		slog.String("team_id", teamID),
	)

	teammate, err := s.provider.FindByTeamAndEmail(ctx, teamID, email)
	if err != nil {
		log.Warn("failed to find teammate", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return teammate, nil
}

// Validate runs the teammate rules without touching storage.
func (s *TeammateService) Validate(params models.TeammateParams) []apperrors.Violation {
	return s.validator.Teammate(models.NewTeammate(params))
}

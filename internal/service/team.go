package service

import (
	"context"
	"fmt"
	"log/slog"

	"team-membership/internal/domain/models"
	"team-membership/internal/lib/logger/sl"
)

type TeamService struct {
	log      *slog.Logger
	teamRepo TeamProvider
}

type TeamProvider interface {
	Persist(ctx context.Context, team *models.Team) error
	FindByID(ctx context.Context, id string) (*models.Team, error)
}

func NewTeamService(
	log *slog.Logger,
	teamRepo TeamProvider) *TeamService {
	return &TeamService{
		log:      log,
		teamRepo: teamRepo,
	}
}

// CreateTeam builds a team from name and members, in the given order, and persists it.
func (s *TeamService) CreateTeam(ctx context.Context, name string, members []models.TeammateParams) (*models.Team, error) {
	const op = "service.team.CreateTeam"

	log := s.log.With(
		slog.String("op", op),
		slog.String("team_name", name),
	)

	log.Info("attempting to create team", slog.Int("member_count", len(members)))

	team := models.NewTeam(name)
	for _, m := range members {
		team.AddMember(models.NewTeammate(m))
	}

	if err := s.teamRepo.Persist(ctx, team); err != nil {
		log.Warn("failed to create team", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("team created successfully", slog.String("team_id", team.ID))

	return team, nil
}

func (s *TeamService) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	const op = "service.team.GetTeam"

	log := s.log.With(
		slog.String("op", op),
		slog.String("team_id", id),
	)

	log.Debug("attempting to get team")

	team, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		log.Warn("failed to get team", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Debug("team retrieved successfully", slog.Int("member_count", len(team.Members)))

	return team, nil
}

package service

import (
	"context"
	"fmt"
	"log/slog"

	"team-membership/internal/domain/models"
	"team-membership/internal/lib/logger/sl"
)

type StatsService struct {
	log       *slog.Logger
	statsRepo StatsProvider
}

type StatsProvider interface {
	GetTeamStats(ctx context.Context) (*models.TeamStats, error)
}

func NewStatsService(
	log *slog.Logger,
	statsRepo StatsProvider) *StatsService {
	return &StatsService{
		log:       log,
		statsRepo: statsRepo,
	}
}

func (s *StatsService) GetTeamStats(ctx context.Context) (*models.TeamStats, error) {
	const op = "service.stats.GetTeamStats"

	log := s.log.With(slog.String("op", op))

	log.Info("getting team statistics")

	stats, err := s.statsRepo.GetTeamStats(ctx)
	if err != nil {
		log.Error("failed to get team stats", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("team statistics retrieved successfully",
		slog.Int("total_teams", stats.TotalTeams),
		slog.Int("total_teammates", stats.TotalTeammates))

	return stats, nil
}

package repo

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"team-membership/internal/domain/models"
)

type StatsRepo struct {
	storage *sqlx.DB
}

func NewStatsRepo(storage *sqlx.DB) *StatsRepo {
	return &StatsRepo{storage: storage}
}

func (r *StatsRepo) GetTeamStats(ctx context.Context) (*models.TeamStats, error) {
	const op = "repo.stats.GetTeamStats"

	query := `
		SELECT
			(SELECT COUNT(*) FROM teams) AS total_teams,
			(SELECT COUNT(*) FROM teammates) AS total_teammates,
			(SELECT COUNT(*) FROM teammates WHERE team_id IS NOT NULL) AS team_members
	`

	var counts struct {
		TotalTeams     int `db:"total_teams"`
		TotalTeammates int `db:"total_teammates"`
		TeamMembers    int `db:"team_members"`
	}

	if err := r.storage.GetContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stats := &models.TeamStats{
		TotalTeams:     counts.TotalTeams,
		TotalTeammates: counts.TotalTeammates,
	}
	if counts.TotalTeams > 0 {
		stats.AvgMembersPerTeam = float64(counts.TeamMembers) / float64(counts.TotalTeams)
	}

	return stats, nil
}

package models

type TeamStats struct {
	TotalTeams        int     `json:"total_teams"`
	TotalTeammates    int     `json:"total_teammates"`
	AvgMembersPerTeam float64 `json:"avg_members_per_team"`
}

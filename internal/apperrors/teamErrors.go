package apperrors

import "errors"

var (
	ErrTeamNotFound     = errors.New("team not found")
	ErrInvalidTeam      = errors.New("team is not valid")
	ErrTeamNameRequired = errors.New("team name is required")
)

package apperrors

import "errors"

var (
	ErrTeammateNotFound = errors.New("teammate not found")
	ErrInvalidTeammate  = errors.New("teammate is not valid")
	ErrEmailTaken       = errors.New("email already in use")
)

package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the closed set of failure kinds surfaced by the API.
type Kind string

const (
	KindValidation Kind = "ValidationFailure"
	KindConflict   Kind = "ConflictFailure"
	KindNotFound   Kind = "NotFoundFailure"
	KindGeneric    Kind = "GenericFailure"
)

// Violation is a single field-level rule failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return v.Field + ": " + v.Message
}

// ValidationFailure carries every violation found on a candidate value.
type ValidationFailure struct {
	Violations []Violation
	target     error
}

func NewValidationFailure(target error, violations []Violation) *ValidationFailure {
	return &ValidationFailure{Violations: violations, target: target}
}

func (e *ValidationFailure) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationFailure) Unwrap() error {
	return e.target
}

// ConflictFailure reports a uniqueness violation raised by storage.
type ConflictFailure struct {
	Constraint string
	Field      string
	Value      string
	cause      error
}

func NewConflictFailure(field, value, constraint string, cause error) *ConflictFailure {
	return &ConflictFailure{Constraint: constraint, Field: field, Value: value, cause: cause}
}

func (e *ConflictFailure) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("unique constraint on %s violated", e.Field)
	}
	return fmt.Sprintf("%s <%s> already in use", e.Field, e.Value)
}

// Unwrap exposes both the matching sentinel and the storage cause.
func (e *ConflictFailure) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Field == "email" {
		errs = append(errs, ErrEmailTaken)
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

// NotFoundFailure reports a lookup miss together with the keys it used.
type NotFoundFailure struct {
	Resource string
	Keys     map[string]string
	msg      string
	target   error
}

func (e *NotFoundFailure) Error() string {
	return e.msg
}

func (e *NotFoundFailure) Unwrap() error {
	return e.target
}

func TeammateNotFound(teamID, email string) *NotFoundFailure {
	return &NotFoundFailure{
		Resource: "teammate",
		Keys:     map[string]string{"team_id": teamID, "email": email},
		msg:      fmt.Sprintf("no teammate for given email <%s> in team <%s>", email, teamID),
		target:   ErrTeammateNotFound,
	}
}

func TeamNotFound(teamID string) *NotFoundFailure {
	return &NotFoundFailure{
		Resource: "team",
		Keys:     map[string]string{"id": teamID},
		msg:      fmt.Sprintf("no team for given id <%s>", teamID),
		target:   ErrTeamNotFound,
	}
}

// KindOf resolves err, however deeply wrapped, to its failure kind.
func KindOf(err error) Kind {
	var (
		validation *ValidationFailure
		conflict   *ConflictFailure
		notFound   *NotFoundFailure
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &validation):
		return KindValidation
	case errors.As(err, &conflict):
		return KindConflict
	case errors.As(err, &notFound):
		return KindNotFound
	default:
		return KindGeneric
	}
}

func RouteNotFound(method, path string) *NotFoundFailure {
	return &NotFoundFailure{
		Resource: "route",
		Keys:     map[string]string{"method": method, "path": path},
		msg:      fmt.Sprintf("no route for <%s %s>", method, path),
	}
}

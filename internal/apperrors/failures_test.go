package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("UNIQUE constraint failed: teammates.email")

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: ""},
		{
			name: "validation",
			err:  NewValidationFailure(ErrInvalidTeammate, []Violation{{Field: "name", Message: "name cannot be null"}}),
			want: KindValidation,
		},
		{
			name: "wrapped conflict",
			err:  fmt.Errorf("repo.teammate.Persist: %w", NewConflictFailure("email", "a@b.it", "teammates.email", cause)),
			want: KindConflict,
		},
		{
			name: "wrapped not found",
			err:  fmt.Errorf("service: %w", fmt.Errorf("repo: %w", TeammateNotFound("t", "e@x.it"))),
			want: KindNotFound,
		},
		{name: "anything else", err: errors.New("boom"), want: KindGeneric},
		{name: "bare sentinel", err: ErrTeamNotFound, want: KindGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestTeammateNotFound_Message(t *testing.T) {
	err := TeammateNotFound("nonexistent-team", "missing@x.it")

	assert.Equal(t, "no teammate for given email <missing@x.it> in team <nonexistent-team>", err.Error())
	assert.ErrorIs(t, err, ErrTeammateNotFound)
	assert.Equal(t, "teammate", err.Resource)
	assert.Equal(t, map[string]string{"team_id": "nonexistent-team", "email": "missing@x.it"}, err.Keys)
}

func TestTeamNotFound_Message(t *testing.T) {
	err := TeamNotFound("t-404")

	assert.Equal(t, "no team for given id <t-404>", err.Error())
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestConflictFailure_Unwrap(t *testing.T) {
	cause := errors.New("duplicate")
	err := fmt.Errorf("op: %w", NewConflictFailure("email", "a@b.it", "uq_teammates_email", cause))

	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "op: email <a@b.it> already in use", err.Error())

	noCause := NewConflictFailure("name", "", "teams.name", nil)
	assert.NotErrorIs(t, noCause, ErrEmailTaken)
	assert.Equal(t, "unique constraint on name violated", noCause.Error())
}

func TestValidationFailure_Error(t *testing.T) {
	err := NewValidationFailure(ErrInvalidTeammate, []Violation{
		{Field: "name", Message: "name cannot be null"},
		{Field: "email", Message: "must be a well-formed email address"},
	})

	assert.Contains(t, err.Error(), "name cannot be null")
	assert.Contains(t, err.Error(), "must be a well-formed email address")
	assert.ErrorIs(t, err, ErrInvalidTeammate)
}

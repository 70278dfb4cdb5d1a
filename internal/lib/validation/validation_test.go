package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"team-membership/internal/apperrors"
	"team-membership/internal/domain/models"
)

func TestValidator_Teammate(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		input models.TeammateParams
		want  []apperrors.Violation
	}{
		{
			name:  "valid",
			input: models.TeammateParams{Name: "name", Email: "name@domain.it"},
			want:  nil,
		},
		{
			name:  "name missing and email malformed",
			input: models.TeammateParams{Email: "pippo"},
			want: []apperrors.Violation{
				{Field: "name", Message: MsgNameRequired},
				{Field: "email", Message: MsgMalformedEmail},
			},
		},
		{
			name:  "email missing",
			input: models.TeammateParams{Name: "name"},
			want:  []apperrors.Violation{{Field: "email", Message: MsgMalformedEmail}},
		},
		{
			name:  "domain without dot",
			input: models.TeammateParams{Name: "name", Email: "name@localhost"},
			want:  []apperrors.Violation{{Field: "email", Message: MsgMalformedEmail}},
		},
		{
			name:  "no local part",
			input: models.TeammateParams{Name: "name", Email: "@domain.it"},
			want:  []apperrors.Violation{{Field: "email", Message: MsgMalformedEmail}},
		},
		{
			name:  "trailing dot",
			input: models.TeammateParams{Name: "name", Email: "name@domain."},
			want:  []apperrors.Violation{{Field: "email", Message: MsgMalformedEmail}},
		},
		{
			name:  "whitespace inside",
			input: models.TeammateParams{Name: "name", Email: "na me@domain.it"},
			want:  []apperrors.Violation{{Field: "email", Message: MsgMalformedEmail}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Teammate(models.NewTeammate(tt.input))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidator_TeamReportsMembers(t *testing.T) {
	v := New()

	team := models.NewTeam("").
		AddMember(models.NewTeammate(models.TeammateParams{Name: "ok", Email: "ok@domain.it"})).
		AddMember(models.NewTeammate(models.TeammateParams{Email: "broken"}))

	got := v.Team(team)

	require.Len(t, got, 3)
	assert.Contains(t, got, apperrors.Violation{Field: "name", Message: MsgNameRequired})
	assert.Contains(t, got, apperrors.Violation{Field: "members[1].name", Message: MsgNameRequired})
	assert.Contains(t, got, apperrors.Violation{Field: "members[1].email", Message: MsgMalformedEmail})
}

func TestValidator_TeamWithoutMembers(t *testing.T) {
	assert.Empty(t, New().Team(models.NewTeam("core")))
}

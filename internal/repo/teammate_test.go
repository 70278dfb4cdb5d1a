package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"team-membership/internal/apperrors"
	"team-membership/internal/domain/models"
	"team-membership/internal/lib/validation"
)

func TestTeammateRepo_EmailIsUnique(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	teammate := models.NewTeammate(models.TeammateParams{Name: "name", Email: "name@domain.it"})
	require.NoError(t, f.teammates.Persist(ctx, teammate))
	assert.NotEmpty(t, teammate.ID)

	sameEmail := models.NewTeammate(models.TeammateParams{Name: "other", Email: "name@domain.it"})
	err := f.teammates.Persist(ctx, sameEmail)

	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)

	var conflict *apperrors.ConflictFailure
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "email", conflict.Field)
	assert.Equal(t, "name@domain.it", conflict.Value)
	assert.Equal(t, "teammates.email", conflict.Constraint)
	assert.Empty(t, sameEmail.ID)
	assert.Equal(t, 1, f.count(t, "teammates"))
}

func TestTeammateRepo_EmailIsUniqueAcrossTeams(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	red := models.NewTeam("red").
		AddMember(models.NewTeammate(models.TeammateParams{Name: "Ada", Email: "ada@domain.it"}))
	require.NoError(t, f.teams.Persist(ctx, red))

	blue := models.NewTeam("blue")
	require.NoError(t, f.teams.Persist(ctx, blue))

	err := f.teammates.Persist(ctx, models.NewTeammate(models.TeammateParams{
		Name:   "Ada again",
		Email:  "ada@domain.it",
		TeamID: blue.ID,
	}))

	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestTeammateRepo_ValidationFailureReportsEveryField(t *testing.T) {
	f := newFixture(t)

	err := f.teammates.Persist(context.Background(), models.NewTeammate(models.TeammateParams{Email: "pippo"}))

	var failure *apperrors.ValidationFailure
	require.True(t, errors.As(err, &failure))
	assert.ErrorIs(t, err, apperrors.ErrInvalidTeammate)
	assert.ElementsMatch(t, []apperrors.Violation{
		{Field: "name", Message: validation.MsgNameRequired},
		{Field: "email", Message: validation.MsgMalformedEmail},
	}, failure.Violations)
	assert.Contains(t, err.Error(), "name cannot be null")
	assert.Contains(t, err.Error(), "must be a well-formed email address")
}

func TestTeammateRepo_ValidationGateLeavesStoreUnchanged(t *testing.T) {
	f := newFixture(t)

	err := f.teammates.Persist(context.Background(), models.NewTeammate(models.TeammateParams{Name: "name", Email: "bad"}))

	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Equal(t, 0, f.count(t, "teammates"))
}

func TestTeammateRepo_PersistIntoMissingTeam(t *testing.T) {
	f := newFixture(t)

	err := f.teammates.Persist(context.Background(), models.NewTeammate(models.TeammateParams{
		Name:   "name",
		Email:  "name@domain.it",
		TeamID: "ghost",
	}))

	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
	assert.Equal(t, 0, f.count(t, "teammates"))
}

func TestTeammateRepo_PersistAppendsToTeam(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	team := models.NewTeam("team").
		AddMember(models.NewTeammate(models.TeammateParams{Name: "First", Email: "first@domain.it"}))
	require.NoError(t, f.teams.Persist(ctx, team))

	second := models.NewTeammate(models.TeammateParams{Name: "Second", Email: "second@domain.it", TeamID: team.ID})
	require.NoError(t, f.teammates.Persist(ctx, second))
	assert.Equal(t, 1, second.Position)

	stored, err := f.teams.FindByID(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, stored.Members, 2)
	assert.Equal(t, "first@domain.it", stored.Members[0].Email)
	assert.Equal(t, *second, stored.Members[1])
}

func TestTeammateRepo_FindByTeamAndEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	expected := models.NewTeammate(models.TeammateParams{Name: "User", Email: "findByEmail@domain.it"})
	team := models.NewTeam("team").AddMember(expected)
	require.NoError(t, f.teams.Persist(ctx, team))

	actual, err := f.teammates.FindByTeamAndEmail(ctx, team.ID, "findByEmail@domain.it")
	require.NoError(t, err)
	assert.Equal(t, team.Members[0], *actual)
	assert.Equal(t, team.ID, actual.TeamID)

	again, err := f.teammates.FindByTeamAndEmail(ctx, team.ID, "findByEmail@domain.it")
	require.NoError(t, err)
	assert.Equal(t, actual, again)
}

func TestTeammateRepo_FindByTeamAndEmailMiss(t *testing.T) {
	f := newFixture(t)

	_, err := f.teammates.FindByTeamAndEmail(context.Background(), "nonexistent-team", "missing@x.it")

	var notFound *apperrors.NotFoundFailure
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "no teammate for given email <missing@x.it> in team <nonexistent-team>", notFound.Error())
	assert.ErrorIs(t, err, apperrors.ErrTeammateNotFound)
}

func TestTeammateRepo_FindByTeamAndEmailIsScoped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	red := models.NewTeam("red").
		AddMember(models.NewTeammate(models.TeammateParams{Name: "Ada", Email: "ada@domain.it"}))
	blue := models.NewTeam("blue")
	require.NoError(t, f.teams.Persist(ctx, red))
	require.NoError(t, f.teams.Persist(ctx, blue))

	_, err := f.teammates.FindByTeamAndEmail(ctx, blue.ID, "ada@domain.it")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	_, err = f.teammates.FindByTeamAndEmail(ctx, red.ID, "ADA@domain.it")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

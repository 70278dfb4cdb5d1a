package repo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"team-membership/internal/config"
	"team-membership/internal/lib/logger"
	"team-membership/internal/lib/migrator"
	"team-membership/internal/lib/validation"
	"team-membership/internal/storage"
	"team-membership/internal/storage/sqlite"
)

type fixture struct {
	storage   *storage.Storage
	teams     *TeamRepo
	teammates *TeammateRepo
	stats     *StatsRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	path := filepath.Join(t.TempDir(), "repo.db")
	require.NoError(t, migrator.RunMigrations(config.DriverSQLite, path, logger.Discard()))

	s, err := sqlite.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	v := validation.New()

	return &fixture{
		storage:   s,
		teams:     NewTeamRepo(s, v),
		teammates: NewTeammateRepo(s, v),
		stats:     NewStatsRepo(s.GetDB()),
	}
}

func (f *fixture) count(t *testing.T, table string) int {
	t.Helper()

	var n int
	require.NoError(t, f.storage.GetDB().GetContext(context.Background(), &n, "SELECT COUNT(*) FROM "+table))
	return n
}

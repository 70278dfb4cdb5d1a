package integration

import (
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	"team-membership/internal/app"
	"team-membership/internal/config"
	v1 "team-membership/internal/http/v1"
	"team-membership/internal/lib/logger"
	"team-membership/internal/lib/migrator"
	"team-membership/internal/storage"
	"team-membership/internal/storage/sqlite"
)

type TestServer struct {
	DB      *sqlx.DB
	Server  *httptest.Server
	storage *storage.Storage
	dir     string
}

func NewTestServer() (*TestServer, error) {
	dir, err := os.MkdirTemp("", "teams-integration-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}

	path := filepath.Join(dir, "teams.db")
	log := logger.Discard()

	if err := migrator.RunMigrations(config.DriverSQLite, path, log); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	s, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ts := httptest.NewServer(v1.NewHandler(app.NewDependencies(log, s), log))

	return &TestServer{
		DB:      s.GetDB(),
		Server:  ts,
		storage: s,
		dir:     dir,
	}, nil
}

func (s *TestServer) LoadFixtures() error {
	fixtures := []string{
		`INSERT INTO teams (id, name) VALUES ('backend', 'Backend'), ('qa', 'QA')`,
		`INSERT INTO teammates (id, team_id, name, email, position) VALUES
			('m1', 'backend', 'Alice', 'alice@domain.it', 0),
			('m2', 'backend', 'Bob', 'bob@domain.it', 1),
			('m3', 'qa', 'Ivan', 'ivan@domain.it', 0)`,
	}

	for _, q := range fixtures {
		if _, err := s.DB.Exec(q); err != nil {
			return fmt.Errorf("failed to load fixtures: %w", err)
		}
	}

	return nil
}

func (s *TestServer) Close() {
	s.Server.Close()
	_ = s.storage.Close()
	_ = os.RemoveAll(s.dir)
}

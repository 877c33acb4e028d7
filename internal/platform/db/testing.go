package db

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ferdiebergado/gopherkit/env"

	"github.com/ferdiebergado/autokit/internal/config"
)

// Setup connects to the test database and applies migrations. The
// automobile table is truncated after each test.
func Setup(t *testing.T) *sql.DB {
	t.Helper()

	const projRoot = "../../"

	if err := env.Load(projRoot + ".env.testing"); err != nil {
		t.Fatalf("failed to load environment file: %v", err)
	}

	cfg, err := config.Load(projRoot + "config.json")
	if err != nil {
		t.Fatalf("failed to load config file: %v", err)
	}

	conn, err := NewConnection(context.Background(), cfg.DB)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := Migrate(context.Background(), conn); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		if _, err := conn.Exec("TRUNCATE automobile"); err != nil {
			t.Logf("failed to truncate automobile table: %v", err)
		}
		if err := conn.Close(); err != nil {
			t.Logf("failed to close connection: %v", err)
		}
	})

	return conn
}

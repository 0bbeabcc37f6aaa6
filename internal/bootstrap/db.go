package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/leoslab/platform-api/config"
	"github.com/leoslab/platform-api/internal/db"
)

// OpenDB opens the configured database. For sqlite the schema is applied
// on open; postgres schemas are managed externally.
func OpenDB(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn := cfg.Path
	if cfg.Driver == "postgres" {
		dsn = cfg.DSN
	}

	conn, err := db.Open(ctx, cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	if cfg.Driver == "sqlite" {
		if err := db.EnsureSchema(conn); err != nil {
			conn.Close()
			return nil, err
		}
	}

	return conn, nil
}

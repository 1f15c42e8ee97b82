package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB represents a database connection pool
type DB struct {
	*pgxpool.Pool
}

// NewConnection creates a new database connection pool. All connections run
// in UTC so timestamps compare consistently with draw bookkeeping.
func NewConnection(ctx context.Context, databaseURL string) (*DB, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.ConnConfig.RuntimeParams["timezone"] = "UTC"

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// Close closes the database connection pool
func (db *DB) Close() {
	db.Pool.Close()
}

// ConstructDatabaseURL combines a base URL with a database name and defaults
// sslmode=disable when no mode is given.
func ConstructDatabaseURL(baseURL, databaseName string) string {
	databaseURL := strings.TrimRight(baseURL, "/")
	if databaseName != "" {
		if strings.Contains(databaseURL, "?") {
			parts := strings.SplitN(databaseURL, "?", 2)
			databaseURL = fmt.Sprintf("%s/%s?%s", parts[0], databaseName, parts[1])
		} else {
			databaseURL = fmt.Sprintf("%s/%s", databaseURL, databaseName)
		}
	}

	if !strings.Contains(databaseURL, "sslmode=") {
		separator := "&"
		if !strings.Contains(databaseURL, "?") {
			separator = "?"
		}
		databaseURL = fmt.Sprintf("%s%ssslmode=disable", databaseURL, separator)
	}

	return databaseURL
}

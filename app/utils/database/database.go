// Package database opens plain database/sql connections for offline
// tooling. The running panel uses the pgxpool driver instead; this package
// exists for the migration command, which needs multi-statement DDL over
// a single connection.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	maxOpenConns    = 5
	maxIdleConns    = 2
	connMaxLifetime = 5 * time.Minute
	connectTimeout  = 10 * time.Second
)

// Connection wraps a database/sql handle for the audit store.
type Connection struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewConnection opens and pings a connection described by a postgres URL.
func NewConnection(databaseURL string, logger *slog.Logger) (*Connection, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established")
	return &Connection{db: db, logger: logger.With("component", "database")}, nil
}

// DB returns the underlying handle.
func (c *Connection) DB() *sql.DB {
	return c.db
}

// Close closes the connection.
func (c *Connection) Close() error {
	if c.db == nil {
		return nil
	}
	c.logger.Info("closing database connection")
	return c.db.Close()
}

// Health pings the database.
func (c *Connection) Health(ctx context.Context) error {
	if c.db == nil {
		return fmt.Errorf("database connection is nil")
	}
	if err := c.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

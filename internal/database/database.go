// Metergate - Utility Management API Gateway
// Copyright 2026 Metergate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/metergate/metergate

/*
database.go - PostgreSQL Connection Management

This file owns the database connection pool for the gateway. The pool is
created once at startup, injected into the API layer, and closed during
graceful shutdown. No query path opens its own connection.

Connection Pool Configuration:
  - MaxOpenConns: Upper bound on concurrent connections (default: 10)
  - MaxIdleConns: Idle connections kept for reuse (default: 2)
  - ConnMaxLifetime: 1 hour to prevent stale connections
  - ConnMaxIdleTime: 5 minutes for idle connection cleanup

The pgx driver is registered through its database/sql adapter, so all
query code works against the standard *sql.DB interface. Tests substitute
a sqlmock connection via NewWithConn.
*/
package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver

	"github.com/metergate/metergate/internal/config"
	"github.com/metergate/metergate/internal/logging"
)

// DB wraps the SQL connection pool and exposes the gateway's query surface.
type DB struct {
	conn *sql.DB
}

// New opens the connection pool and verifies connectivity with a ping.
//
// The pool settings come from the database configuration. A failed ping
// closes the pool before returning so callers never hold a half-open DB.
func New(ctx context.Context, cfg *config.DatabaseConfig) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()

	if err := conn.PingContext(pingCtx); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			logging.Error().Err(closeErr).Msg("Failed to close database after ping failure")
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logging.Info().
		Int("max_open_conns", cfg.MaxOpenConns).
		Int("max_idle_conns", cfg.MaxIdleConns).
		Msg("Database connection pool established")

	return &DB{conn: conn}, nil
}

// NewWithConn wraps an existing connection. Used by tests to inject sqlmock.
func NewWithConn(conn *sql.DB) *DB {
	return &DB{conn: conn}
}

// Ping verifies the connection is still alive.
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Close releases the connection pool.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	return db.conn.Close()
}

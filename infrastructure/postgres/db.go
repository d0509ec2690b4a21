package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

// DB is a pooled Bun handle on the hosted device_variants database.
type DB struct {
	SQL *sql.DB
	Bun *bun.DB
}

// OpenDB prepares a lib/pq pool. No connection is made until first use or Ping.
func OpenDB(dsn string) (*DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("postgres dsn is required")
	}
	sqldb, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	sqldb.SetMaxIdleConns(5)
	sqldb.SetMaxOpenConns(10)
	sqldb.SetConnMaxLifetime(60 * time.Minute)

	return &DB{SQL: sqldb, Bun: bun.NewDB(sqldb, pgdialect.New())}, nil
}

// Ping checks the hosted database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	if db == nil || db.SQL == nil {
		return fmt.Errorf("postgres db is not initialized")
	}
	return db.SQL.PingContext(ctx)
}

// WithReadTx runs fn in a read-only transaction.
func (db *DB) WithReadTx(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error {
	if db == nil || db.Bun == nil {
		return fmt.Errorf("postgres db is not initialized")
	}
	return db.Bun.RunInTx(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

// Close releases the pool.
func (db *DB) Close() error {
	if db == nil || db.Bun == nil {
		return nil
	}
	return db.Bun.Close()
}

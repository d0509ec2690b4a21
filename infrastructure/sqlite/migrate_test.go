package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/uptrace/bun"
)

func TestApplyEmbeddedMigrations(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "embedded.db")
	db, err := OpenDB(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := ApplyEmbeddedMigrations(context.Background(), db); err != nil {
		t.Fatalf("apply embedded migrations: %v", err)
	}

	var tables int64
	var devices int64
	err = db.WithReadTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		if err := tx.NewRaw(
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('device_variants', 'devices')`,
		).Scan(ctx, &tables); err != nil {
			return err
		}
		return tx.NewRaw(`SELECT COUNT(*) FROM devices`).Scan(ctx, &devices)
	})
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if tables != 2 {
		t.Fatalf("expected device_variants and devices tables, got %d", tables)
	}
	if devices == 0 {
		t.Fatalf("expected seeded device names")
	}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	if err := ApplyEmbeddedMigrations(context.Background(), db); err != nil {
		t.Fatalf("re-apply migrations: %v", err)
	}

	var recorded int
	err := db.WithReadTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw(`SELECT COUNT(*) FROM schema_migrations`).Scan(ctx, &recorded)
	})
	if err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	if recorded != 2 {
		t.Fatalf("expected 2 recorded migrations, got %d", recorded)
	}
}

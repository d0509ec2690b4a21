package postgres

import (
	"context"
	"testing"

	"github.com/uptrace/bun"
)

func TestOpenDBRequiresDSN(t *testing.T) {
	if _, err := OpenDB("  "); err == nil {
		t.Fatalf("expected error for empty dsn")
	}
}

func TestOpenDBDoesNotDial(t *testing.T) {
	db, err := OpenDB("host=127.0.0.1 port=1 user=nobody dbname=none sslmode=disable")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if db.Bun == nil || db.SQL == nil {
		t.Fatalf("expected initialized handles")
	}
}

func TestNilDBGuards(t *testing.T) {
	var db *DB
	if err := db.Ping(context.Background()); err == nil {
		t.Fatalf("expected ping error on nil db")
	}
	err := db.WithReadTx(context.Background(), func(ctx context.Context, tx bun.Tx) error { return nil })
	if err == nil {
		t.Fatalf("expected read tx error on nil db")
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close nil db: %v", err)
	}
}

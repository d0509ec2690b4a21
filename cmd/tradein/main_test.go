package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"tradein/infrastructure/config"
	"tradein/infrastructure/variants"
)

func TestOpenSourceMemory(t *testing.T) {
	src, closeStore, err := openSource(context.Background(), config.AppConfig{
		VariantStore: config.StoreMemory,
		QueryTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("open memory source: %v", err)
	}
	defer closeStore()

	rows, err := src.ListByDevice(context.Background(), "iphone-15-pro", variants.Query{OrderByPrice: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 || rows[0].Storage != "128GB" {
		t.Fatalf("unexpected demo rows: %+v", rows)
	}
	names, err := src.DeviceNames(context.Background())
	if err != nil {
		t.Fatalf("names: %v", err)
	}
	if names["macbook-air-m2"] != "MacBook Air M2" {
		t.Fatalf("expected demo display names, got %v", names)
	}
}

func TestOpenSourceSQLiteAppliesMigrations(t *testing.T) {
	cfg := config.AppConfig{
		VariantStore: config.StoreSQLite,
		SQLitePath:   filepath.Join(t.TempDir(), "tradein.db"),
		QueryTimeout: time.Second,
	}
	src, closeStore, err := openSource(context.Background(), cfg)
	if err != nil {
		t.Fatalf("open sqlite source: %v", err)
	}
	defer closeStore()

	names, err := src.DeviceNames(context.Background())
	if err != nil {
		t.Fatalf("names: %v", err)
	}
	if names["iphone-15-pro"] != "iPhone 15 Pro" {
		t.Fatalf("expected seeded device names, got %d entries", len(names))
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"tradein/frontend/sell/variant"
	"tradein/infrastructure/cache"
	"tradein/infrastructure/config"
	httpserver "tradein/infrastructure/http"
	"tradein/infrastructure/postgres"
	"tradein/infrastructure/sqlite"
	"tradein/infrastructure/variants"
	"tradein/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	slog.SetDefault(cfg.NewLogger())

	src, closeStore, err := openSource(context.Background(), cfg)
	if err != nil {
		log.Fatalf("open variant store: %v", err)
	}
	defer closeStore()

	names := cache.NewDeviceNameCache()
	warmCtx, cancel := context.WithTimeout(context.Background(), cfg.QueryTimeout)
	if err := names.Refresh(warmCtx, src.DeviceNames); err != nil {
		slog.Warn("device names unavailable; falling back to identifiers", slog.Any("err", err))
	}
	cancel()

	server := httpserver.NewServer(cfg.Addr, variant.Deps{
		Source: src,
		Names:  names,
		Settings: variant.Settings{
			Menu:        variant.MenuPolicy(cfg.MenuPolicy),
			Unavailable: variant.UnavailableDisplay(cfg.UnavailableOptions),
			SortByPrice: cfg.SortByPrice,
		},
		PriceLocale:    cfg.PriceLocale,
		CurrencySymbol: cfg.CurrencySymbol,
		CurrencyCode:   "INR",
		QueryTimeout:   cfg.QueryTimeout,
		Now:            time.Now,
	})
	if err := server.Start(); err != nil {
		log.Fatalf("start server: %v", err)
	}
	slog.Info("tradein listening",
		slog.String("addr", server.ListenAddr()),
		slog.String("store", cfg.VariantStore),
		slog.String("menu", cfg.MenuPolicy),
		slog.Int("device_names", names.Len()))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	if err := server.Stop(); err != nil {
		slog.Error("graceful shutdown error", slog.Any("err", err))
	}
}

func openSource(ctx context.Context, cfg config.AppConfig) (variants.Source, func(), error) {
	switch cfg.VariantStore {
	case config.StorePostgres:
		db, err := postgres.OpenDB(cfg.PostgresDSN())
		if err != nil {
			return nil, nil, err
		}
		pingCtx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
		defer cancel()
		if err := db.Ping(pingCtx); err != nil {
			// The page degrades to error toasts; keep serving.
			slog.Warn("postgres ping failed", slog.Any("err", err))
		}
		return variants.NewBunSource(db), func() { _ = db.Close() }, nil
	case config.StoreMemory:
		rows := demoVariants()
		names := make(map[string]string, len(rows))
		for _, v := range rows {
			names[v.DeviceID] = v.DeviceName
		}
		return variants.NewMemorySource(rows, names), func() {}, nil
	default:
		db, err := sqlite.OpenDB(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := sqlite.ApplyEmbeddedMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("apply migrations: %w", err)
		}
		return variants.NewBunSource(db), func() { _ = db.Close() }, nil
	}
}

func demoVariants() []models.DeviceVariant {
	now := time.Now()
	row := func(id, deviceID, name, brand, deviceType, storage string, price int64) models.DeviceVariant {
		return models.DeviceVariant{
			ID: id, DeviceID: deviceID, DeviceName: name, Brand: brand, DeviceType: deviceType,
			Storage: storage, BasePrice: decimal.NewFromInt(price), CreatedAt: now, UpdatedAt: now,
		}
	}
	return []models.DeviceVariant{
		row("demo-1", "iphone-15-pro", "iPhone 15 Pro", "apple", models.DeviceTypePhone, "128GB", 50000),
		row("demo-2", "iphone-15-pro", "iPhone 15 Pro", "apple", models.DeviceTypePhone, "256GB", 60000),
		row("demo-3", "galaxy-s24", "Galaxy S24", "samsung", models.DeviceTypePhone, "256GB", 42000),
		row("demo-4", "macbook-air-m2", "MacBook Air M2", "apple", models.DeviceTypeLaptop, "512GB SSD", 72000),
		row("demo-5", "ipad-air", "iPad Air", "apple", models.DeviceTypeTablet, "64GB", 28000),
	}
}

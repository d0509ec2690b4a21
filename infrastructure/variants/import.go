package variants

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"tradein/models"
)

var importHeader = []string{"device_id", "device_name", "brand", "device_type", "storage", "base_price"}

// WriteTxRunner is implemented by the sqlite handle.
type WriteTxRunner interface {
	WithWriteTx(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error
}

type ImportSummary struct {
	Inserted int
	Updated  int
	Errors   int
}

// ImportCSV upserts variant rows keyed on device_id + storage.
// Malformed rows are counted and skipped; a store failure aborts the whole import.
func ImportCSV(ctx context.Context, db WriteTxRunner, reader io.Reader) (ImportSummary, error) {
	summary := ImportSummary{}
	r := csv.NewReader(reader)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return summary, fmt.Errorf("read header: %w", err)
	}
	if !validHeader(header) {
		return summary, fmt.Errorf("invalid CSV header; expected %s", strings.Join(importHeader, ","))
	}

	err = db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		line := 1
		for {
			record, err := r.Read()
			if errors.Is(err, io.EOF) {
				return nil
			}
			line++
			if err != nil {
				summary.Errors++
				slog.Warn("skip unreadable variant row", slog.Int("line", line), slog.Any("err", err))
				continue
			}
			v, err := parseRecord(record)
			if err != nil {
				summary.Errors++
				slog.Warn("skip invalid variant row", slog.Int("line", line), slog.Any("err", err))
				continue
			}

			var exists int
			if err := tx.NewRaw(`SELECT COUNT(1) FROM device_variants WHERE device_id = ? AND storage = ?`, v.DeviceID, v.Storage).Scan(ctx, &exists); err != nil {
				return err
			}
			if exists > 0 {
				summary.Updated++
			} else {
				summary.Inserted++
			}

			if _, err := tx.ExecContext(ctx, `
INSERT INTO device_variants (id, device_id, device_name, brand, device_type, storage, base_price, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
ON CONFLICT(device_id, storage) DO UPDATE SET
  device_name = excluded.device_name,
  brand = excluded.brand,
  device_type = excluded.device_type,
  base_price = excluded.base_price,
  updated_at = CURRENT_TIMESTAMP`,
				v.ID, v.DeviceID, v.DeviceName, v.Brand, v.DeviceType, v.Storage, v.BasePrice,
			); err != nil {
				return err
			}
		}
	})
	if err != nil {
		return summary, fmt.Errorf("import variants: %w", err)
	}
	return summary, nil
}

func validHeader(header []string) bool {
	if len(header) < len(importHeader) {
		return false
	}
	for i, name := range importHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), name) {
			return false
		}
	}
	return true
}

func parseRecord(record []string) (models.DeviceVariant, error) {
	if len(record) < len(importHeader) {
		return models.DeviceVariant{}, fmt.Errorf("expected %d fields, got %d", len(importHeader), len(record))
	}
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}
	v := models.DeviceVariant{
		ID:         uuid.NewString(),
		DeviceID:   record[0],
		DeviceName: record[1],
		Brand:      record[2],
		DeviceType: models.NormalizeDeviceType(strings.ToLower(record[3])),
		Storage:    record[4],
	}
	if v.DeviceID == "" || v.DeviceName == "" || v.Storage == "" {
		return v, fmt.Errorf("device_id, device_name and storage are required")
	}
	if v.DeviceType == "" {
		return v, fmt.Errorf("unknown device_type %q", record[3])
	}
	price, err := decimal.NewFromString(record[5])
	if err != nil {
		return v, fmt.Errorf("invalid base_price %q: %w", record[5], err)
	}
	if price.IsNegative() {
		return v, fmt.Errorf("base_price must not be negative")
	}
	v.BasePrice = price
	return v, nil
}

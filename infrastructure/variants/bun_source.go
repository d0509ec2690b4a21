package variants

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"tradein/models"
)

// BunSource reads variants through any Bun-backed database.
type BunSource struct {
	db ReadTxRunner
}

func NewBunSource(db ReadTxRunner) *BunSource {
	return &BunSource{db: db}
}

func (s *BunSource) ListByDevice(ctx context.Context, deviceID string, q Query) ([]models.DeviceVariant, error) {
	rows := make([]models.DeviceVariant, 0)
	err := s.db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		sel := tx.NewSelect().Model(&rows).Where("dv.device_id = ?", deviceID)
		if q.OrderByPrice {
			sel = sel.Order("dv.base_price ASC")
		}
		// Stable order for equal prices and for the unordered listing.
		sel = sel.Order("dv.created_at ASC", "dv.id ASC")
		return sel.Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list device variants for %s: %w", deviceID, err)
	}
	return rows, nil
}

func (s *BunSource) DeviceNames(ctx context.Context) (map[string]string, error) {
	devices := make([]models.Device, 0)
	err := s.db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&devices).Column("id", "display_name").Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list device names: %w", err)
	}
	names := make(map[string]string, len(devices))
	for _, d := range devices {
		names[d.ID] = d.DisplayName
	}
	return names, nil
}

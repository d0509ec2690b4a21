package variants

import (
	"context"

	"github.com/uptrace/bun"

	"tradein/models"
)

// Query narrows a device variant listing.
type Query struct {
	OrderByPrice bool
}

// Source is the hosted device_variants collection as seen by the storefront.
type Source interface {
	ListByDevice(ctx context.Context, deviceID string, q Query) ([]models.DeviceVariant, error)
	DeviceNames(ctx context.Context) (map[string]string, error)
}

// ReadTxRunner is implemented by the sqlite and postgres handles.
type ReadTxRunner interface {
	WithReadTx(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error
}

package variant

import (
	"context"
	"time"

	variantinfra "tradein/infrastructure/variants"
)

// LoadVariants runs one bounded query for deviceID and applies it to view.
// It reports false if the result arrived for a superseded load.
func LoadVariants(ctx context.Context, src variantinfra.Source, view *View, deviceID string, timeout time.Duration) bool {
	ticket := view.Begin(deviceID)
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	rows, err := src.ListByDevice(ctx, deviceID, variantinfra.Query{OrderByPrice: view.Settings().SortByPrice})
	return view.Apply(ticket, rows, err)
}

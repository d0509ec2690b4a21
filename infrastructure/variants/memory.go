package variants

import (
	"context"
	"sort"
	"sync"

	"tradein/models"
)

// MemorySource serves variants from process memory.
type MemorySource struct {
	mu    sync.RWMutex
	rows  []models.DeviceVariant
	names map[string]string
	err   error
}

func NewMemorySource(rows []models.DeviceVariant, names map[string]string) *MemorySource {
	if names == nil {
		names = make(map[string]string)
	}
	return &MemorySource{rows: append([]models.DeviceVariant(nil), rows...), names: names}
}

// FailWith makes every subsequent read return err; nil restores normal reads.
func (m *MemorySource) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MemorySource) ListByDevice(ctx context.Context, deviceID string, q Query) ([]models.DeviceVariant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.DeviceVariant, 0)
	for _, v := range m.rows {
		if v.DeviceID == deviceID {
			out = append(out, v)
		}
	}
	if q.OrderByPrice {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].BasePrice.LessThan(out[j].BasePrice)
		})
	}
	return out, nil
}

func (m *MemorySource) DeviceNames(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make(map[string]string, len(m.names))
	for k, v := range m.names {
		out[k] = v
	}
	return out, nil
}

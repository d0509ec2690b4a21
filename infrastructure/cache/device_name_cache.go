package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// DeviceNameCache holds device id -> display name pairs loaded from the devices table.
type DeviceNameCache struct {
	mu       sync.RWMutex
	names    map[string]string
	loadedAt time.Time
}

func NewDeviceNameCache() *DeviceNameCache {
	return &DeviceNameCache{names: make(map[string]string)}
}

// Replace swaps the whole table.
func (c *DeviceNameCache) Replace(names map[string]string) {
	next := make(map[string]string, len(names))
	for id, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		next[strings.ToLower(id)] = name
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names = next
	c.loadedAt = time.Now()
}

// Refresh reloads the table with load. On error the previous table is kept.
func (c *DeviceNameCache) Refresh(ctx context.Context, load func(ctx context.Context) (map[string]string, error)) error {
	names, err := load(ctx)
	if err != nil {
		return err
	}
	c.Replace(names)
	return nil
}

func (c *DeviceNameCache) Get(deviceID string) (string, bool) {
	if c == nil {
		return "", false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	name, ok := c.names[strings.ToLower(deviceID)]
	return name, ok
}

func (c *DeviceNameCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.names)
}

// LoadedAt reports when the table was last replaced; zero if never.
func (c *DeviceNameCache) LoadedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedAt
}

package variants

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"tradein/models"
)

func TestMemorySourceFiltersAndSorts(t *testing.T) {
	src := NewMemorySource([]models.DeviceVariant{
		{ID: "a", DeviceID: "galaxy-s24", Storage: "512GB", BasePrice: decimal.NewFromInt(52000)},
		{ID: "b", DeviceID: "galaxy-s24", Storage: "256GB", BasePrice: decimal.NewFromInt(45000)},
		{ID: "c", DeviceID: "galaxy-s23-ultra", Storage: "256GB", BasePrice: decimal.NewFromInt(39000)},
	}, map[string]string{"galaxy-s24": "Galaxy S24"})

	rows, err := src.ListByDevice(context.Background(), "galaxy-s24", Query{OrderByPrice: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 || rows[0].ID != "b" || rows[1].ID != "a" {
		t.Fatalf("unexpected rows: %+v", rows)
	}

	unsorted, err := src.ListByDevice(context.Background(), "galaxy-s24", Query{})
	if err != nil {
		t.Fatalf("list unsorted: %v", err)
	}
	if unsorted[0].ID != "a" {
		t.Fatalf("expected insertion order, got %+v", unsorted)
	}

	names, err := src.DeviceNames(context.Background())
	if err != nil || names["galaxy-s24"] != "Galaxy S24" {
		t.Fatalf("unexpected names %v (%v)", names, err)
	}
}

func TestMemorySourceFailWith(t *testing.T) {
	src := NewMemorySource(nil, nil)
	boom := errors.New("upstream unavailable")
	src.FailWith(boom)

	if _, err := src.ListByDevice(context.Background(), "x", Query{}); !errors.Is(err, boom) {
		t.Fatalf("expected injected error, got %v", err)
	}
	src.FailWith(nil)
	if _, err := src.ListByDevice(context.Background(), "x", Query{}); err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
}

func TestMemorySourceHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewMemorySource(nil, nil).ListByDevice(ctx, "x", Query{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

package variant

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tradein/infrastructure/variants"
)

func TestVariantSelectionPage_LoadingPlaceholder(t *testing.T) {
	deps := newTestDeps(variants.NewMemorySource(nil, nil), Settings{})
	params := RouteParams{Category: "phone", BrandID: "apple", DeviceID: "iphone-15-pro", CityID: "delhi"}
	view := NewView(deps.Settings, params.Category, nil)
	view.Begin(params.DeviceID)

	var buf bytes.Buffer
	if err := VariantSelectionPage(BuildPageData(deps, params, view)).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `aria-busy="true"`) {
		t.Fatalf("expected loading placeholder, got %s", out)
	}
	if strings.Contains(out, "Storage Capacity") {
		t.Fatalf("expected options hidden while loading")
	}
}

func TestVariantSelectionPage_EscapesLabels(t *testing.T) {
	data := PageData{
		Params:     RouteParams{Category: "laptop", BrandID: "apple", DeviceID: "macbook-air-13", CityID: "delhi"},
		DeviceName: `MacBook Air 13"`,
		HasPricing: true,
		Options:    []OptionRow{{Label: "<b>1TB</b>", Href: "/x?storage=%3Cb%3E", Available: true}},
	}
	var buf bytes.Buffer
	if err := VariantSelectionPage(data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "<b>1TB</b>") {
		t.Fatalf("expected label to be escaped")
	}
	if !strings.Contains(out, "MacBook Air 13&#34;") {
		t.Fatalf("expected escaped device name, got %s", out)
	}
}

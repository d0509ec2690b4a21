package variant

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"tradein/frontend/shared/toast"
	"tradein/models"
)

// MenuPolicy picks where the storage menu comes from.
type MenuPolicy string

const (
	// MenuCatalog shows the fixed category menu whether or not prices exist.
	MenuCatalog MenuPolicy = "catalog"
	// MenuData shows exactly the fetched variants.
	MenuData MenuPolicy = "data"
)

// UnavailableDisplay controls catalog options that have no price.
type UnavailableDisplay string

const (
	UnavailableFlag UnavailableDisplay = "flag"
	UnavailableHide UnavailableDisplay = "hide"
)

type Settings struct {
	Menu        MenuPolicy
	Unavailable UnavailableDisplay
	SortByPrice bool
}

// Ticket identifies one load. Results carrying an outdated ticket are dropped.
type Ticket struct {
	DeviceID   string
	generation uint64
}

// Option is one entry of the storage menu.
type Option struct {
	Label     string
	Price     decimal.Decimal
	Available bool
	Selected  bool
}

// View is the state of the storage picker for one device. It is not safe for
// concurrent use; a request owns its View.
type View struct {
	settings Settings
	category string
	notifier toast.Notifier

	deviceID   string
	generation uint64
	loading    bool
	failed     bool

	variants []models.DeviceVariant
	prices   map[string]decimal.Decimal

	selected string
	price    *decimal.Decimal
}

func NewView(settings Settings, category string, notifier toast.Notifier) *View {
	if settings.Menu == "" {
		settings.Menu = MenuCatalog
	}
	if settings.Unavailable == "" {
		settings.Unavailable = UnavailableFlag
	}
	if notifier == nil {
		notifier = toast.Discard
	}
	return &View{
		settings: settings,
		category: category,
		notifier: notifier,
		prices:   make(map[string]decimal.Decimal),
	}
}

// Begin resets the view for deviceID and enters the loading state.
func (v *View) Begin(deviceID string) Ticket {
	v.generation++
	v.deviceID = deviceID
	v.loading = true
	v.failed = false
	v.variants = nil
	v.prices = make(map[string]decimal.Decimal)
	v.selected = ""
	v.price = nil
	return Ticket{DeviceID: deviceID, generation: v.generation}
}

// Apply stores the outcome of the load identified by t. It reports false when t is
// stale and the result was discarded.
func (v *View) Apply(t Ticket, rows []models.DeviceVariant, err error) bool {
	if t.generation != v.generation || t.DeviceID != v.deviceID {
		slog.Debug("discard stale variant load", slog.String("device_id", t.DeviceID), slog.String("current_device_id", v.deviceID))
		return false
	}
	v.loading = false

	if err != nil {
		v.failed = true
		slog.Error("load device variants failed", slog.String("device_id", t.DeviceID), slog.Any("err", err))
		v.notifier.Notify(toast.Toast{
			Title:       "Error",
			Description: "Failed to load pricing information. Please try again.",
			Variant:     toast.VariantDestructive,
		})
		return true
	}

	for _, row := range rows {
		if _, dup := v.prices[row.Storage]; dup {
			continue
		}
		v.prices[row.Storage] = row.BasePrice
		v.variants = append(v.variants, row)
	}
	if len(v.variants) == 0 {
		v.notifier.Notify(toast.Toast{
			Title:       "No pricing data",
			Description: "Pricing information is not yet available for this device.",
			Variant:     toast.VariantDestructive,
		})
	}
	return true
}

func (v *View) DeviceID() string { return v.deviceID }

func (v *View) Loading() bool { return v.loading }

// Failed reports whether the last load ended in a query error.
func (v *View) Failed() bool { return v.failed }

// HasPricing reports whether at least one variant price is known.
func (v *View) HasPricing() bool { return len(v.prices) > 0 }

// Variants returns the fetched variants in query order, one per storage label.
func (v *View) Variants() []models.DeviceVariant {
	return append([]models.DeviceVariant(nil), v.variants...)
}

// PriceFor looks up the base price of a storage label.
func (v *View) PriceFor(label string) (decimal.Decimal, bool) {
	p, ok := v.prices[label]
	return p, ok
}

// RecordName is the display name carried by the fetched records, if any.
func (v *View) RecordName() string {
	for _, row := range v.variants {
		if row.DeviceName != "" {
			return row.DeviceName
		}
	}
	return ""
}

func (v *View) Settings() Settings { return v.settings }

// Options builds the storage menu for the configured policy.
func (v *View) Options() []Option {
	if v.loading {
		return nil
	}
	var labels []string
	switch v.settings.Menu {
	case MenuData:
		labels = make([]string, 0, len(v.variants))
		for _, row := range v.variants {
			labels = append(labels, row.Storage)
		}
	default:
		labels = CatalogFor(v.category)
	}

	out := make([]Option, 0, len(labels))
	for _, label := range labels {
		price, ok := v.prices[label]
		if !ok && v.settings.Unavailable == UnavailableHide {
			continue
		}
		out = append(out, Option{
			Label:     label,
			Price:     price,
			Available: ok,
			Selected:  label == v.selected,
		})
	}
	return out
}

// Select picks a storage label from the menu and resolves its price. Labels outside
// the menu are ignored. It reports whether a price was resolved.
func (v *View) Select(label string) bool {
	if v.loading || !v.inMenu(label) {
		return false
	}
	v.selected = label
	if price, ok := v.prices[label]; ok {
		v.price = &price
		return true
	}
	v.price = nil
	v.notifier.Notify(toast.Toast{
		Title:       "Price not available",
		Description: "Pricing for " + label + " variant is not yet available in the database.",
		Variant:     toast.VariantDestructive,
	})
	return false
}

// Selection returns the chosen label and its price; price is nil when unresolved.
func (v *View) Selection() (string, *decimal.Decimal) {
	return v.selected, v.price
}

func (v *View) inMenu(label string) bool {
	for _, opt := range v.Options() {
		if opt.Label == label {
			return true
		}
	}
	return false
}

package variant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"tradein/frontend/shared/money"
	"tradein/frontend/shared/toast"
	"tradein/infrastructure/cache"
	variantinfra "tradein/infrastructure/variants"
	"tradein/models"
)

const sellPrefix = "sell-"

var (
	errNotSellRoute = errors.New("not a sell route")
	slugPattern     = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)
	validate        = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	return v
}

// Deps carries what the variant page needs from the server.
type Deps struct {
	Source         variantinfra.Source
	Names          *cache.DeviceNameCache
	Settings       Settings
	PriceLocale    string
	CurrencySymbol string
	CurrencyCode   string
	QueryTimeout   time.Duration
	Now            func() time.Time
}

// ParseRouteParams reads and validates the chi path parameters of the variant page.
func ParseRouteParams(r *http.Request) (RouteParams, error) {
	segment := chi.URLParam(r, "segment")
	if !strings.HasPrefix(segment, sellPrefix) {
		return RouteParams{}, errNotSellRoute
	}
	p := RouteParams{
		Category: strings.TrimPrefix(segment, sellPrefix),
		BrandID:  chi.URLParam(r, "brandId"),
		DeviceID: chi.URLParam(r, "deviceId"),
		CityID:   chi.URLParam(r, "cityId"),
	}
	if err := validate.Struct(p); err != nil {
		return p, fmt.Errorf("invalid route params: %w", err)
	}
	return p, nil
}

// VariantPageQueryHandler renders the storage picker; ?storage= selects a variant.
func VariantPageQueryHandler(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := routeParamsOrError(w, r)
		if !ok {
			return
		}

		tray := &toast.Tray{}
		view := loadView(r.Context(), deps, params, tray)
		if storage := strings.TrimSpace(r.URL.Query().Get("storage")); storage != "" {
			view.Select(storage)
		}

		data := BuildPageData(deps, params, view)
		data.Toasts = tray.Toasts()

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := VariantSelectionPage(data).Render(r.Context(), w); err != nil {
			slog.Error("render variant page failed", slog.String("device_id", params.DeviceID), slog.Any("err", err))
			http.Error(w, "failed to render variant page", http.StatusInternalServerError)
			return
		}
	}
}

// VariantQuotePDFHandler serves a printable quote for a priced selection.
func VariantQuotePDFHandler(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := routeParamsOrError(w, r)
		if !ok {
			return
		}

		view := loadView(r.Context(), deps, params, toast.Discard)
		storage := strings.TrimSpace(r.URL.Query().Get("storage"))
		if view.Failed() {
			http.Error(w, "pricing information unavailable", http.StatusBadGateway)
			return
		}
		if storage == "" || !view.Select(storage) {
			http.Error(w, "price not available", http.StatusNotFound)
			return
		}
		_, price := view.Selection()

		now := time.Now
		if deps.Now != nil {
			now = deps.Now
		}
		code := deps.CurrencyCode
		if code == "" {
			code = "INR"
		}
		pdfBytes, err := renderQuotePDF(QuoteData{
			DeviceID:   params.DeviceID,
			DeviceName: ResolveDisplayName(deps, view),
			Storage:    storage,
			CityID:     params.CityID,
			Price:      money.Plain(code, deps.PriceLocale, *price),
			IssuedAt:   now(),
		})
		if err != nil {
			slog.Error("render quote pdf failed", slog.String("device_id", params.DeviceID), slog.Any("err", err))
			http.Error(w, "failed to build quote pdf", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%s-quote.pdf", params.DeviceID))
		_, _ = w.Write(pdfBytes)
	}
}

// DeviceVariantsAPIHandler lists a device's variants as JSON in query order.
func DeviceVariantsAPIHandler(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deviceID := chi.URLParam(r, "deviceId")
		if err := validate.Var(deviceID, "required,max=96,slug"); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid device id"})
			return
		}

		ctx := r.Context()
		if deps.QueryTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, deps.QueryTimeout)
			defer cancel()
		}
		rows, err := deps.Source.ListByDevice(ctx, deviceID, variantinfra.Query{OrderByPrice: deps.Settings.SortByPrice})
		if err != nil {
			slog.Error("list device variants failed", slog.String("device_id", deviceID), slog.Any("err", err))
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": "failed to load pricing information"})
			return
		}
		if rows == nil {
			rows = []models.DeviceVariant{}
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

// BuildPageData turns view state into render data.
func BuildPageData(deps Deps, params RouteParams, view *View) PageData {
	data := PageData{
		Params:     params,
		DeviceName: ResolveDisplayName(deps, view),
		Loading:    view.Loading(),
		HasPricing: view.HasPricing(),
	}
	for _, opt := range view.Options() {
		data.Options = append(data.Options, OptionRow{
			Label:     opt.Label,
			Href:      params.SelectPath(opt.Label),
			Available: opt.Available,
			Selected:  opt.Selected,
		})
	}
	storage, price := view.Selection()
	data.SelectedStorage = storage
	if price != nil {
		data.HasPrice = true
		data.BasePrice = money.Format(deps.CurrencySymbol, deps.PriceLocale, *price)
	}
	return data
}

// ResolveDisplayName prefers the fetched record name under the data policy, then the
// devices lookup, then the raw identifier.
func ResolveDisplayName(deps Deps, view *View) string {
	if view.Settings().Menu == MenuData {
		if name := view.RecordName(); name != "" {
			return name
		}
	}
	if name, ok := deps.Names.Get(view.DeviceID()); ok {
		return name
	}
	return view.DeviceID()
}

func loadView(ctx context.Context, deps Deps, params RouteParams, notifier toast.Notifier) *View {
	view := NewView(deps.Settings, params.Category, notifier)
	LoadVariants(ctx, deps.Source, view, params.DeviceID, deps.QueryTimeout)
	return view
}

func routeParamsOrError(w http.ResponseWriter, r *http.Request) (RouteParams, bool) {
	params, err := ParseRouteParams(r)
	if errors.Is(err, errNotSellRoute) {
		http.NotFound(w, r)
		return params, false
	}
	if err != nil {
		slog.Warn("reject variant request", slog.String("path", r.URL.Path), slog.Any("err", err))
		http.Error(w, "invalid route parameters", http.StatusBadRequest)
		return params, false
	}
	return params, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode json response failed", slog.Any("err", err))
	}
}

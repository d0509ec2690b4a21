package variant

import (
	"fmt"
	"net/url"

	"tradein/frontend/shared/toast"
)

// RouteParams are the ancestor route values of the variant page.
type RouteParams struct {
	Category string `validate:"required,oneof=phone laptop tablet ipad"`
	BrandID  string `validate:"required,max=64,slug"`
	DeviceID string `validate:"required,max=96,slug"`
	CityID   string `validate:"required,max=64,slug"`
}

// BasePath is the variant page path for these params.
func (p RouteParams) BasePath() string {
	return fmt.Sprintf("/sell-%s/brand/%s/device/%s/city/%s", p.Category, p.BrandID, p.DeviceID, p.CityID)
}

// BackPath leads back to city selection for the device.
func (p RouteParams) BackPath() string {
	return fmt.Sprintf("/sell-%s/brand/%s/device/%s/city", p.Category, p.BrandID, p.DeviceID)
}

func (p RouteParams) QuestionnairePath() string {
	return p.BasePath() + "/questionnaire"
}

// SelectPath is the page URL with storage chosen.
func (p RouteParams) SelectPath(storage string) string {
	return p.BasePath() + "?storage=" + url.QueryEscape(storage)
}

func (p RouteParams) QuotePath(storage string) string {
	return p.BasePath() + "/quote.pdf?storage=" + url.QueryEscape(storage)
}

// OptionRow is a rendered storage menu entry.
type OptionRow struct {
	Label     string
	Href      string
	Available bool
	Selected  bool
}

type PageData struct {
	Params          RouteParams
	DeviceName      string
	Loading         bool
	HasPricing      bool
	Options         []OptionRow
	SelectedStorage string
	HasPrice        bool
	BasePrice       string
	Toasts          []toast.Toast
}

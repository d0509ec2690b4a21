package variant

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"tradein/frontend/shared/html"
)

// VariantSelectionPage renders the storage picker inside the storefront layout.
func VariantSelectionPage(data PageData) templ.Component {
	return html.Layout("Choose Variant | "+data.DeviceName, data.Toasts, variantSelectionBody(data))
}

func variantSelectionBody(data PageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		name := templ.EscapeString(data.DeviceName)

		b.WriteString(`<main class="section-padding"><div class="container">`)
		b.WriteString(`<nav class="back"><a class="btn btn-ghost" href="` + href(data.Params.BackPath()) + `">&#8249; Back to Device Selection</a></nav>`)
		b.WriteString(`<header class="page-header"><h1>Choose <span class="accent">Variant</span></h1>`)
		b.WriteString(`<p>Select storage capacity for your ` + name + `</p></header>`)

		if data.Loading {
			b.WriteString(`<div class="loading" aria-busy="true"><span class="spinner"></span></div></div></main>`)
			_, err := io.WriteString(w, b.String())
			return err
		}

		b.WriteString(`<section class="card"><h3>Storage Capacity</h3><div class="options">`)
		for _, opt := range data.Options {
			class := "btn btn-outline option"
			if opt.Selected {
				class = "btn btn-default option"
			}
			if !opt.Available {
				class += " unavailable"
			}
			b.WriteString(`<a class="` + class + `" href="` + href(opt.Href) + `" data-storage="` + templ.EscapeString(opt.Label) + `">`)
			b.WriteString(templ.EscapeString(opt.Label))
			if !opt.Available {
				b.WriteString(`<span class="marker" title="Price not available"></span>`)
			}
			b.WriteString(`</a>`)
		}
		b.WriteString(`</div>`)
		if !data.HasPricing {
			b.WriteString(`<p class="empty-state">Pricing information is not yet available for this device.</p>`)
		}

		if data.HasPrice && data.SelectedStorage != "" {
			storage := templ.EscapeString(data.SelectedStorage)
			b.WriteString(`<div class="price-reveal">`)
			b.WriteString(`<p>Base price for ` + name + ` (` + storage + `)</p>`)
			b.WriteString(`<div class="price">` + templ.EscapeString(data.BasePrice) + `</div>`)
			b.WriteString(`<p class="disclaimer">*Final price depends on device condition</p>`)
			b.WriteString(`<a class="btn btn-hero" href="` + href(data.Params.QuestionnairePath()) + `">Get Exact Value</a>`)
			b.WriteString(`<a class="btn btn-link" href="` + href(data.Params.QuotePath(data.SelectedStorage)) + `">Download quote</a>`)
			b.WriteString(`</div>`)
		}
		b.WriteString(`</section></div></main>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func href(u string) string {
	return templ.EscapeString(string(templ.URL(u)))
}

package html

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"tradein/frontend/shared/toast"
)

// Layout wraps body in the storefront page shell and renders toasts on top.
func Layout(title string, toasts []toast.Toast, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>`+templ.EscapeString(title)+`</title>`+
			`<link rel="stylesheet" href="/assets/app.css"></head><body>`); err != nil {
			return err
		}
		if err := Toasts(toasts).Render(ctx, w); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// Toasts renders the notification stack. Destructive toasts are announced assertively.
func Toasts(toasts []toast.Toast) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(toasts) == 0 {
			return nil
		}
		if _, err := io.WriteString(w, `<ol class="toast-stack">`); err != nil {
			return err
		}
		for _, t := range toasts {
			role := "status"
			if t.Variant == toast.VariantDestructive {
				role = "alert"
			}
			_, err := io.WriteString(w, `<li class="toast toast-`+templ.EscapeString(string(t.Variant))+`" role="`+role+`" data-variant="`+templ.EscapeString(string(t.Variant))+`">`+
				`<p class="toast-title">`+templ.EscapeString(t.Title)+`</p>`+
				`<p class="toast-description">`+templ.EscapeString(t.Description)+`</p></li>`)
			if err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ol>`)
		return err
	})
}

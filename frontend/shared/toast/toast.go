package toast

import "sync"

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Toast is a transient, non-blocking notification.
type Toast struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

// Notifier accepts toasts without reporting back.
type Notifier interface {
	Notify(t Toast)
}

// Tray collects the toasts raised while one page is built.
type Tray struct {
	mu     sync.Mutex
	toasts []Toast
}

func (t *Tray) Notify(n Toast) {
	if n.Variant == "" {
		n.Variant = VariantDefault
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.toasts = append(t.toasts, n)
}

// Toasts returns a copy in raise order.
func (t *Tray) Toasts() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Toast(nil), t.toasts...)
}

// Discard drops every toast.
var Discard Notifier = discard{}

type discard struct{}

func (discard) Notify(Toast) {}

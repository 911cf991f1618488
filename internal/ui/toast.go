package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// toastKind selects the style a toast renders with.
type toastKind int

const (
	toastInfo toastKind = iota
	toastSuccess
	toastError
)

// Toast display durations. Prompts and errors linger longer than
// confirmations.
const (
	toastShort = 2 * time.Second
	toastLong  = 3 * time.Second
)

// toast is a transient status line. Each toast gets a fresh id so a stale
// expiry timer never dismisses a newer message.
type toast struct {
	text    string
	kind    toastKind
	id      int
	visible bool
}

// show replaces the current toast and returns the command that expires it.
func (t *toast) show(text string, kind toastKind, d time.Duration) tea.Cmd {
	t.id++
	t.text = text
	t.kind = kind
	t.visible = true

	id := t.id
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// expire hides the toast when the timer matches the visible message.
func (t *toast) expire(id int) {
	if t.id == id {
		t.visible = false
	}
}

// render returns the styled toast line, or "" when nothing is showing.
func (t *toast) render() string {
	if !t.visible {
		return ""
	}
	switch t.kind {
	case toastSuccess:
		return styles.ok.Render(t.text)
	case toastError:
		return styles.err.Render(t.text)
	default:
		return styles.warn.Render(t.text)
	}
}

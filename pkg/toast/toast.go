// Package toast carries transient outcome notifications and the terminal
// notifier that prints them.
package toast

import (
	"fmt"
	"html"
	"io"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Type classifies a toast.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeInfo    Type = "info"
)

// Toast is a transient, non-blocking message describing an operation outcome.
type Toast struct {
	Type        Type   `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Success builds a success toast.
func Success(title string, description ...string) Toast {
	return Toast{Type: TypeSuccess, Title: title, Description: strings.Join(description, " ")}
}

// Error builds an error toast.
func Error(title string, description ...string) Toast {
	return Toast{Type: TypeError, Title: title, Description: strings.Join(description, " ")}
}

// Notifier displays toasts. Display and dismissal timing belong to the
// implementation.
type Notifier interface {
	Notify(t Toast)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Toast)

// Notify calls fn(t).
func (fn NotifierFunc) Notify(t Toast) {
	fn(t)
}

// Theme holds the prefixes printed before each toast type.
type Theme struct {
	SuccessPrefix string
	ErrorPrefix   string
	InfoPrefix    string
}

// DefaultTheme is used when a writer notifier is built without one.
var DefaultTheme = Theme{
	SuccessPrefix: "✔",
	ErrorPrefix:   "✗",
	InfoPrefix:    "•",
}

// WriterNotifier prints toasts as lines on an io.Writer. Title and
// description are stripped of markup before printing since they may carry
// server supplied text.
type WriterNotifier struct {
	mu    sync.Mutex
	out   io.Writer
	theme Theme
}

// NewWriterNotifier builds a notifier printing to out.
func NewWriterNotifier(out io.Writer, theme ...Theme) *WriterNotifier {
	n := &WriterNotifier{out: out, theme: DefaultTheme}
	if len(theme) > 0 {
		n.theme = theme[0]
	}
	return n
}

// Notify prints t.
func (n *WriterNotifier) Notify(t Toast) {
	if n == nil || n.out == nil {
		return
	}
	line := n.prefix(t.Type) + " " + PlainText(t.Title)
	if desc := PlainText(t.Description); desc != "" {
		line += ": " + desc
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.out, line)
}

func (n *WriterNotifier) prefix(kind Type) string {
	switch kind {
	case TypeSuccess:
		return n.theme.SuccessPrefix
	case TypeError:
		return n.theme.ErrorPrefix
	default:
		return n.theme.InfoPrefix
	}
}

var (
	plainPolicyOnce sync.Once
	plainPolicy     *bluemonday.Policy
)

// PlainText strips markup from s and returns trimmed, unescaped text safe to
// print on a terminal.
func PlainText(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	plainPolicyOnce.Do(func() {
		plainPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(plainPolicy.Sanitize(trimmed)))
}

// Recorder keeps every toast it receives. Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	toasts []Toast
}

// Notify records t.
func (r *Recorder) Notify(t Toast) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, t)
}

// Toasts returns a copy of the recorded toasts.
func (r *Recorder) Toasts() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Toast(nil), r.toasts...)
}

// Package navigation provides the fire-and-forget "navigate to path"
// operation pages use after a successful submission.
package navigation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Well-known paths.
const (
	PathSignIn    = "/"
	PathDashboard = "/dashboard"
	PathProfile   = "/profile"
)

// ErrUnknownPath is returned by Router.Run when no view is registered for the
// pending path.
var ErrUnknownPath = errors.New("navigation: unknown path")

// Navigator moves the user to another view.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(string)

// Navigate calls fn(path).
func (fn NavigatorFunc) Navigate(path string) {
	fn(path)
}

// View renders the screen registered for a path.
type View func(ctx context.Context) error

// Router records navigation requests and runs the view registered for the
// last requested path. Navigate never blocks; views run from Run.
type Router struct {
	mu      sync.Mutex
	views   map[string]View
	pending string
	history []string
	logger  *slog.Logger
}

// NewRouter builds an empty router.
func NewRouter(logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		views:  make(map[string]View),
		logger: logger,
	}
}

// Handle registers view for path.
func (r *Router) Handle(path string, view View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views[normalize(path)] = view
}

// Navigate records path as the next view to show.
func (r *Router) Navigate(path string) {
	path = normalize(path)
	r.mu.Lock()
	r.pending = path
	r.history = append(r.history, path)
	r.mu.Unlock()
	r.logger.Debug("navigate", "path", path)
}

// History returns every path navigated to, oldest first.
func (r *Router) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.history...)
}

// Pending returns the path waiting to be shown, if any.
func (r *Router) Pending() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending, r.pending != ""
}

// Run shows the pending view, then keeps following navigations the views
// make until one returns without navigating.
func (r *Router) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.mu.Lock()
		path := r.pending
		r.pending = ""
		view, ok := r.views[path]
		r.mu.Unlock()

		if path == "" {
			return nil
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownPath, path)
		}
		if err := view(ctx); err != nil {
			return err
		}
	}
}

func normalize(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	if len(trimmed) > 1 {
		trimmed = strings.TrimRight(trimmed, "/")
	}
	return trimmed
}

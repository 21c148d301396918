package workflow

import (
	"context"
	"errors"
	"log/slog"

	"github.com/goliatone/go-formflow/pkg/navigation"
	"github.com/goliatone/go-formflow/pkg/toast"
	"github.com/goliatone/go-formflow/pkg/validation"
)

// Surface shows field errors next to the form that produced them.
type Surface interface {
	ClearErrors()
	SetErrors(errs validation.FieldErrors)
}

// SubmitFunc performs the remote operation for a valid input.
type SubmitFunc[T any] func(ctx context.Context, input validation.Input) (T, error)

// Config describes one form's submission behaviour.
type Config[T any] struct {
	// Name identifies the workflow in logs.
	Name string
	// Schema builds the validation schema. It is called once per attempt.
	Schema func() validation.Schema
	// Submit performs the remote operation.
	Submit SubmitFunc[T]
	// OnSuccess receives the remote result, typically to replace the session
	// user. Errors are logged and do not change the outcome.
	OnSuccess func(ctx context.Context, data T) error
	// SuccessToast is shown after a successful submission when set.
	SuccessToast *toast.Toast
	// FailureToast is shown once for every remote failure.
	FailureToast toast.Toast
	// NavigateTo is requested after a successful submission when set.
	NavigateTo string
}

// Option configures the collaborators of a Workflow.
type Option func(*collaborators)

type collaborators struct {
	surface   Surface
	notifier  toast.Notifier
	navigator navigation.Navigator
	logger    *slog.Logger
}

// WithSurface sets the form surface that receives field errors.
func WithSurface(surface Surface) Option {
	return func(c *collaborators) {
		c.surface = surface
	}
}

// WithNotifier sets the toast notifier.
func WithNotifier(notifier toast.Notifier) Option {
	return func(c *collaborators) {
		c.notifier = notifier
	}
}

// WithNavigator sets the navigator used after success.
func WithNavigator(navigator navigation.Navigator) Option {
	return func(c *collaborators) {
		c.navigator = navigator
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *collaborators) {
		c.logger = logger
	}
}

// Workflow runs submissions for one form.
type Workflow[T any] struct {
	cfg Config[T]
	collaborators
}

var (
	// ErrMissingSchema is returned by New when Config.Schema is nil.
	ErrMissingSchema = errors.New("workflow: schema is required")
	// ErrMissingSubmit is returned by New when Config.Submit is nil.
	ErrMissingSubmit = errors.New("workflow: submit function is required")
)

// New validates cfg and binds it to its collaborators. Missing
// collaborators fall back to no-op implementations.
func New[T any](cfg Config[T], options ...Option) (*Workflow[T], error) {
	if cfg.Schema == nil {
		return nil, ErrMissingSchema
	}
	if cfg.Submit == nil {
		return nil, ErrMissingSubmit
	}
	w := &Workflow[T]{cfg: cfg}
	for _, opt := range options {
		if opt != nil {
			opt(&w.collaborators)
		}
	}
	if w.surface == nil {
		w.surface = nopSurface{}
	}
	if w.notifier == nil {
		w.notifier = toast.NotifierFunc(func(toast.Toast) {})
	}
	if w.navigator == nil {
		w.navigator = navigation.NavigatorFunc(func(string) {})
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	return w, nil
}

// Submit runs one attempt against input and returns its outcome.
func (w *Workflow[T]) Submit(ctx context.Context, input validation.Input) Outcome[T] {
	w.surface.ClearErrors()

	result := w.cfg.Schema().Validate(input)
	if !result.Valid() {
		errs := result.FieldErrors()
		w.surface.SetErrors(errs)
		return Invalid[T](errs)
	}

	data, err := w.cfg.Submit(ctx, input)
	if err != nil {
		w.logger.Warn("form submission failed", "workflow", w.cfg.Name, "error", err)
		w.notifier.Notify(w.cfg.FailureToast)
		return Failed[T](err)
	}

	if w.cfg.OnSuccess != nil {
		if err := w.cfg.OnSuccess(ctx, data); err != nil {
			w.logger.Warn("post-submit hook failed", "workflow", w.cfg.Name, "error", err)
		}
	}
	if w.cfg.NavigateTo != "" {
		w.navigator.Navigate(w.cfg.NavigateTo)
	}
	if w.cfg.SuccessToast != nil {
		w.notifier.Notify(*w.cfg.SuccessToast)
	}
	return Succeeded(data)
}

type nopSurface struct{}

func (nopSurface) ClearErrors()                     {}
func (nopSurface) SetErrors(validation.FieldErrors) {}

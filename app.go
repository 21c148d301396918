package formflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/goliatone/go-formflow/internal/config"
	"github.com/goliatone/go-formflow/pkg/api"
	"github.com/goliatone/go-formflow/pkg/model"
	"github.com/goliatone/go-formflow/pkg/navigation"
	pkgopenapi "github.com/goliatone/go-formflow/pkg/openapi"
	"github.com/goliatone/go-formflow/pkg/pages"
	"github.com/goliatone/go-formflow/pkg/renderers/tui"
	"github.com/goliatone/go-formflow/pkg/session"
	"github.com/goliatone/go-formflow/pkg/toast"
	"github.com/goliatone/go-formflow/pkg/validation"
	"github.com/goliatone/go-formflow/pkg/workflow"
)

// Config is the client configuration loaded by the CLI.
type Config = config.Config

// ErrUnknownCommand is returned by Run for unsupported command names.
var ErrUnknownCommand = errors.New("formflow: unknown command")

// Commands lists the supported command names.
var Commands = []string{"signin", "profile", "avatar", "dashboard", "signout"}

// AppOption customises NewApp.
type AppOption func(*appOptions)

type appOptions struct {
	driver     tui.PromptDriver
	out        io.Writer
	logger     *slog.Logger
	httpClient *http.Client
	contract   string
}

// WithPromptDriver replaces the survey prompt driver.
func WithPromptDriver(driver tui.PromptDriver) AppOption {
	return func(o *appOptions) {
		o.driver = driver
	}
}

// WithOutput sets where pages and toasts are written. Defaults to stdout.
func WithOutput(out io.Writer) AppOption {
	return func(o *appOptions) {
		o.out = out
	}
}

// WithLogger sets the application logger.
func WithLogger(logger *slog.Logger) AppOption {
	return func(o *appOptions) {
		o.logger = logger
	}
}

// WithHTTPClient replaces the API HTTP client. Its timeout takes precedence
// over Config.HTTPTimeout.
func WithHTTPClient(client *http.Client) AppOption {
	return func(o *appOptions) {
		o.httpClient = client
	}
}

// WithContract loads the API contract from a file instead of the embedded
// booking contract.
func WithContract(path string) AppOption {
	return func(o *appOptions) {
		o.contract = path
	}
}

// App is the assembled terminal client.
type App struct {
	Logger    *slog.Logger
	Registry  *pkgopenapi.Registry
	Forms     *Forms
	Client    *api.Client
	Session   *session.Store
	Router    *navigation.Router
	Surface   *tui.Surface
	Notifier  toast.Notifier
	SignIn    *pages.SignIn
	Profile   *pages.Profile
	Dashboard *pages.Dashboard

	out io.Writer
}

// NewApp wires every collaborator from cfg.
func NewApp(ctx context.Context, cfg *Config, options ...AppOption) (*App, error) {
	if cfg == nil {
		return nil, errors.New("formflow: config is required")
	}
	opts := appOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&opts)
		}
	}
	if opts.out == nil {
		opts.out = os.Stdout
	}
	if opts.logger == nil {
		opts.logger = slog.Default()
	}
	if opts.driver == nil {
		opts.driver = tui.NewSurveyDriver(opts.out)
	}

	doc, err := LoadDocument(ctx, opts.contract)
	if err != nil {
		return nil, err
	}
	registry, err := LoadRegistry(ctx, doc)
	if err != nil {
		return nil, err
	}
	forms, err := NewForms(registry, nil)
	if err != nil {
		return nil, err
	}

	app := &App{
		Logger:   opts.logger,
		Registry: registry,
		Forms:    forms,
		Router:   navigation.NewRouter(opts.logger),
		Surface:  tui.New(tui.WithPromptDriver(opts.driver)),
		Notifier: toast.NewWriterNotifier(opts.out),
		out:      opts.out,
	}

	clientOpts := []api.Option{
		api.WithTimeout(cfg.HTTPTimeout),
		api.WithLogger(opts.logger),
		api.WithTokenSource(func() string {
			if app.Session == nil {
				return ""
			}
			return app.Session.Token()
		}),
	}
	if opts.httpClient != nil {
		clientOpts = append(clientOpts, api.WithHTTPClient(opts.httpClient))
	}
	app.Client, err = api.New(cfg.APIURL, registry, clientOpts...)
	if err != nil {
		return nil, err
	}

	app.Session, err = session.NewStore(app.Client,
		session.WithFile(cfg.SessionFile),
		session.WithLogger(opts.logger),
	)
	if err != nil {
		return nil, err
	}

	deps := pages.Deps{
		Surface:   app.Surface,
		Notifier:  app.Notifier,
		Navigator: app.Router,
		Logger:    opts.logger,
	}
	if app.SignIn, err = pages.NewSignIn(app.Session, deps); err != nil {
		return nil, err
	}
	if app.Profile, err = pages.NewProfile(app.Client, app.Session, deps); err != nil {
		return nil, err
	}
	if app.Dashboard, err = pages.NewDashboard(app.Session, nil, deps); err != nil {
		return nil, err
	}

	app.Router.Handle(navigation.PathSignIn, app.signInView)
	app.Router.Handle(navigation.PathDashboard, app.dashboardView)
	app.Router.Handle(navigation.PathProfile, app.profileView)
	return app, nil
}

// Run executes a command by name.
func (a *App) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "signin":
		return a.open(ctx, navigation.PathSignIn)
	case "profile":
		return a.open(ctx, navigation.PathProfile)
	case "dashboard":
		return a.open(ctx, navigation.PathDashboard)
	case "avatar":
		return a.uploadAvatar(ctx, args)
	case "signout":
		return a.Dashboard.SignOut(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) open(ctx context.Context, path string) error {
	a.Router.Navigate(path)
	return a.Router.Run(ctx)
}

func (a *App) uploadAvatar(ctx context.Context, args []string) error {
	if !a.Session.Authenticated() {
		return session.ErrNotAuthenticated
	}
	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		form, err := a.Forms.Form(pkgopenapi.OperationUpdateAvatar)
		if err != nil {
			return err
		}
		input, err := a.Surface.Collect(ctx, form, nil)
		if err != nil {
			return err
		}
		path = input.Get(pages.AvatarField)
	}
	a.Profile.UploadAvatar(ctx, path)
	return nil
}

func (a *App) signInView(ctx context.Context) error {
	return a.collectUntilDone(ctx, pkgopenapi.OperationCreateSession, nil,
		func(ctx context.Context, input validation.Input) workflow.Kind {
			return a.SignIn.Submit(ctx, input).Kind
		})
}

func (a *App) profileView(ctx context.Context) error {
	if !a.Session.Authenticated() {
		a.Router.Navigate(navigation.PathSignIn)
		return nil
	}
	return a.collectUntilDone(ctx, pkgopenapi.OperationUpdateProfile, a.Profile.Defaults(),
		func(ctx context.Context, input validation.Input) workflow.Kind {
			return a.Profile.Submit(ctx, input).Kind
		})
}

func (a *App) dashboardView(ctx context.Context) error {
	return a.Dashboard.Render(ctx, a.out)
}

// collectUntilDone prompts the form until a submission succeeds. Invalid
// input is prompted again with the previous values; a remote failure asks
// before retrying.
func (a *App) collectUntilDone(ctx context.Context, operationID string, defaults validation.Input, submit func(context.Context, validation.Input) workflow.Kind) error {
	form, err := a.Forms.Form(operationID)
	if err != nil {
		return err
	}
	for {
		input, err := a.Surface.Collect(ctx, form, defaults)
		if err != nil {
			return err
		}
		switch submit(ctx, input) {
		case workflow.Success:
			return nil
		case workflow.RemoteFailure:
			retry, err := a.Surface.Confirm(ctx, "Try again?", true)
			if err != nil {
				return err
			}
			if !retry {
				return nil
			}
		}
		defaults = keepVisible(form, input)
	}
}

// keepVisible drops secret values so they are never offered as defaults.
func keepVisible(form model.FormModel, input validation.Input) validation.Input {
	out := make(validation.Input, len(input))
	for name, value := range input {
		if field, ok := form.Field(name); ok && field.Input == model.InputPassword {
			continue
		}
		out[name] = value
	}
	return out
}

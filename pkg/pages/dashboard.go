package pages

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/goliatone/go-formflow/pkg/api"
	"github.com/goliatone/go-formflow/pkg/navigation"
	"github.com/goliatone/go-formflow/pkg/render/template"
	"github.com/goliatone/go-formflow/pkg/render/template/pongo"
	"github.com/goliatone/go-formflow/pkg/toast"
)

//go:embed templates/*.tpl
var templateFS embed.FS

// Templates returns the embedded page templates.
func Templates() fs.FS {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// NewTemplateRenderer builds the pongo2 renderer over the embedded
// templates.
func NewTemplateRenderer() (template.TemplateRenderer, error) {
	return pongo.New(pongo.WithFS(Templates()))
}

// DashboardSession reads and ends the current session.
type DashboardSession interface {
	User() (api.User, bool)
	SignOut() error
}

// Dashboard is the landing page for signed-in users.
type Dashboard struct {
	session  DashboardSession
	renderer template.TemplateRenderer
	deps     Deps
}

// NewDashboard builds the dashboard. A nil renderer uses the embedded
// templates.
func NewDashboard(session DashboardSession, renderer template.TemplateRenderer, deps Deps) (*Dashboard, error) {
	if session == nil {
		return nil, errors.New("pages: dashboard needs a session")
	}
	if renderer == nil {
		r, err := NewTemplateRenderer()
		if err != nil {
			return nil, fmt.Errorf("pages: dashboard templates: %w", err)
		}
		renderer = r
	}
	return &Dashboard{session: session, renderer: renderer, deps: deps}, nil
}

// Render writes the greeting for the signed-in user to out. Without a
// session it navigates to the sign-in page and writes nothing.
func (d *Dashboard) Render(_ context.Context, out io.Writer) error {
	user, ok := d.session.User()
	if !ok {
		d.deps.navigate(navigation.PathSignIn)
		return nil
	}
	data := map[string]any{
		"user": map[string]any{
			"name":       toast.PlainText(user.Name),
			"avatar_url": toast.PlainText(user.AvatarURL),
		},
	}
	if _, err := d.renderer.RenderTemplate("dashboard", data, out); err != nil {
		return fmt.Errorf("pages: render dashboard: %w", err)
	}
	return nil
}

// SignOut clears the session and returns to the sign-in page.
func (d *Dashboard) SignOut(_ context.Context) error {
	if err := d.session.SignOut(); err != nil {
		return fmt.Errorf("pages: sign out: %w", err)
	}
	d.deps.navigate(navigation.PathSignIn)
	return nil
}

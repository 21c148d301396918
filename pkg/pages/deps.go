package pages

import (
	"log/slog"

	"github.com/goliatone/go-formflow/pkg/navigation"
	"github.com/goliatone/go-formflow/pkg/toast"
	"github.com/goliatone/go-formflow/pkg/workflow"
)

// Deps are the collaborators shared by every page.
type Deps struct {
	Surface   workflow.Surface
	Notifier  toast.Notifier
	Navigator navigation.Navigator
	Logger    *slog.Logger
}

func (d Deps) options() []workflow.Option {
	return []workflow.Option{
		workflow.WithSurface(d.Surface),
		workflow.WithNotifier(d.Notifier),
		workflow.WithNavigator(d.Navigator),
		workflow.WithLogger(d.logger()),
	}
}

func (d Deps) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

func (d Deps) navigate(path string) {
	if d.Navigator != nil {
		d.Navigator.Navigate(path)
	}
}

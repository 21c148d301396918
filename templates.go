package formflow

import (
	"io/fs"

	"github.com/goliatone/go-formflow/pkg/pages"
)

// EmbeddedTemplates exposes the built-in page templates so callers can reuse
// or extend them without importing the pages package directly.
func EmbeddedTemplates() fs.FS {
	return pages.Templates()
}

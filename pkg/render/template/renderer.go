package template

import (
	"io"
)

// TemplateRenderer renders named templates or inline template strings.
// Writers passed in out receive the rendered output as well.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}

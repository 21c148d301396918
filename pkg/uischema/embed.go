package uischema

import (
	"embed"
	"io/fs"
)

//go:embed forms.yaml
var embeddedForms embed.FS

// EmbeddedFS exposes the built-in form configuration.
func EmbeddedFS() fs.FS {
	return embeddedForms
}

// LoadEmbedded parses the built-in form configuration.
func LoadEmbedded() (*Store, error) {
	return LoadFS(embeddedForms)
}

package openapi

import (
	"embed"
	"io/fs"
	"path/filepath"
)

//go:embed booking.yaml
var embedded embed.FS

// BookingDocumentName is the embedded contract's file name.
const BookingDocumentName = "booking.yaml"

type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type embeddedSource struct {
	name string
}

func (s embeddedSource) Location() string {
	return s.name
}

func (s embeddedSource) Kind() SourceKind {
	return SourceKindEmbedded
}

// EmbeddedFS exposes the contracts compiled into the binary.
func EmbeddedFS() fs.FS {
	return embedded
}

// SourceFromEmbedded returns a Source naming a file in EmbeddedFS (or the
// filesystem a Loader was configured with).
func SourceFromEmbedded(name string) Source {
	return embeddedSource{name: name}
}

// BookingSource points at the embedded booking contract.
func BookingSource() Source {
	return SourceFromEmbedded(BookingDocumentName)
}

// BookingDocument returns the booking API contract compiled into the binary.
func BookingDocument() (Document, error) {
	raw, err := embedded.ReadFile(BookingDocumentName)
	if err != nil {
		return Document{}, err
	}
	return NewDocument(embeddedSource{name: BookingDocumentName}, raw)
}

// Package formflow wires the booking account client together: the API
// contract, form models, session, pages and the terminal surface.
package formflow

import (
	"context"
	"fmt"
	"strings"

	internalLoader "github.com/goliatone/go-formflow/internal/openapi/loader"
	internalParser "github.com/goliatone/go-formflow/internal/openapi/parser"
	"github.com/goliatone/go-formflow/pkg/model"
	pkgopenapi "github.com/goliatone/go-formflow/pkg/openapi"
	"github.com/goliatone/go-formflow/pkg/uischema"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	cfg := pkgopenapi.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...pkgopenapi.ParserOption) pkgopenapi.Parser {
	cfg := pkgopenapi.NewParserOptions(options...)
	return internalParser.New(cfg)
}

// LoadDocument reads the API contract from path, or the embedded booking
// contract when path is empty.
func LoadDocument(ctx context.Context, path string) (pkgopenapi.Document, error) {
	src := pkgopenapi.BookingSource()
	if path = strings.TrimSpace(path); path != "" {
		src = pkgopenapi.SourceFromFile(path)
	}
	doc, err := NewLoader().Load(ctx, src)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("formflow: load contract: %w", err)
	}
	return doc, nil
}

// LoadRegistry parses doc into an operation registry.
func LoadRegistry(ctx context.Context, doc pkgopenapi.Document, options ...pkgopenapi.ParserOption) (*pkgopenapi.Registry, error) {
	operations, err := NewParser(options...).Operations(ctx, doc)
	if err != nil {
		return nil, err
	}
	return pkgopenapi.NewRegistry(operations), nil
}

// Forms builds decorated form models for registry operations.
type Forms struct {
	registry *pkgopenapi.Registry
	ui       *uischema.Store
}

// NewForms binds a registry to UI configuration. A nil store loads the
// embedded forms.yaml.
func NewForms(registry *pkgopenapi.Registry, ui *uischema.Store) (*Forms, error) {
	if ui == nil {
		store, err := uischema.LoadEmbedded()
		if err != nil {
			return nil, fmt.Errorf("formflow: ui schema: %w", err)
		}
		ui = store
	}
	return &Forms{registry: registry, ui: ui}, nil
}

// Form returns the model for operationID with labels, order and input kinds
// applied.
func (f *Forms) Form(operationID string) (model.FormModel, error) {
	op, err := f.registry.Operation(operationID)
	if err != nil {
		return model.FormModel{}, err
	}
	form, err := model.Build(op)
	if err != nil {
		return model.FormModel{}, err
	}
	return f.ui.Decorate(form), nil
}

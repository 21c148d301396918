package model

import (
	"errors"
	"fmt"
	"sort"

	"github.com/goliatone/go-formflow/pkg/openapi"
)

var (
	errOperationIDMissing   = errors.New("model builder: operation id is required")
	errOperationPathMissing = errors.New("model builder: operation path is required")
	errRequestBodyMissing   = errors.New("model builder: operation has no request body properties")
)

// Build converts an operation's request body into a FormModel. Fields are
// sorted by name; decorators reorder them afterwards.
func Build(op openapi.Operation) (FormModel, error) {
	if op.ID == "" {
		return FormModel{}, errOperationIDMissing
	}
	if op.Path == "" {
		return FormModel{}, errOperationPathMissing
	}
	body := op.RequestBody
	if len(body.Properties) == 0 {
		return FormModel{}, fmt.Errorf("%w: %s", errRequestBodyMissing, op.ID)
	}

	names := make([]string, 0, len(body.Properties))
	for name := range body.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	form := FormModel{
		OperationID: op.ID,
		Endpoint:    op.Path,
		Method:      op.Method,
		Title:       op.Summary,
		Fields:      make([]Field, 0, len(names)),
	}
	for _, name := range names {
		prop := body.Properties[name]
		form.Fields = append(form.Fields, Field{
			Name:        name,
			Type:        fieldType(prop.Type),
			Format:      prop.Format,
			Required:    body.IsRequired(name),
			Label:       prop.Title,
			Description: prop.Description,
			Input:       inputKind(prop.Format),
		})
	}
	return form, nil
}

func fieldType(raw string) FieldType {
	switch raw {
	case "integer":
		return FieldTypeInteger
	case "number":
		return FieldTypeNumber
	case "boolean":
		return FieldTypeBoolean
	default:
		return FieldTypeString
	}
}

func inputKind(format string) InputKind {
	switch format {
	case "password":
		return InputPassword
	case "binary":
		return InputFile
	default:
		return InputText
	}
}

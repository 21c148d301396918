package model

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
)

// InputKind selects how a surface captures a field's value.
type InputKind string

const (
	InputText     InputKind = "text"
	InputPassword InputKind = "password"
	InputFile     InputKind = "file"
)

// Field models an individual input inside a form.
type Field struct {
	Name        string    `json:"name"`
	Type        FieldType `json:"type"`
	Format      string    `json:"format,omitempty"`
	Required    bool      `json:"required"`
	Label       string    `json:"label,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Description string    `json:"description,omitempty"`
	Input       InputKind `json:"input,omitempty"`
	Order       int       `json:"order,omitempty"`
	Hidden      bool      `json:"hidden,omitempty"`
}

// DisplayLabel returns the label, falling back to the field name.
func (f Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// FormModel is the top-level representation surfaces consume.
type FormModel struct {
	OperationID string  `json:"operationId"`
	Endpoint    string  `json:"endpoint"`
	Method      string  `json:"method"`
	Title       string  `json:"title,omitempty"`
	Submit      string  `json:"submit,omitempty"`
	Fields      []Field `json:"fields"`
}

// Field looks up a field by name.
func (m FormModel) Field(name string) (Field, bool) {
	for _, field := range m.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// FieldNames lists the field names in prompt order.
func (m FormModel) FieldNames() []string {
	names := make([]string, 0, len(m.Fields))
	for _, field := range m.Fields {
		names = append(names, field.Name)
	}
	return names
}

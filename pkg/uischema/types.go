package uischema

// Store keeps the parsed form configurations keyed by operation id. It is safe
// for concurrent readers when treated as immutable after construction.
type Store struct {
	operations map[string]Operation
}

// Operation describes the UI overrides for a specific API operation.
type Operation struct {
	ID     string
	Source string
	Form   FormConfig
	Fields map[string]FieldConfig
}

// FormConfig captures the copy around a form.
type FormConfig struct {
	Title  string `json:"title" yaml:"title"`
	Submit string `json:"submit" yaml:"submit"`
}

// FieldConfig customises how a field is prompted.
type FieldConfig struct {
	Order       *int   `json:"order,omitempty" yaml:"order,omitempty"`
	Label       string `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	HelpText    string `json:"helpText,omitempty" yaml:"helpText,omitempty"`
	Input       string `json:"input,omitempty" yaml:"input,omitempty"`
	Hidden      bool   `json:"hidden,omitempty" yaml:"hidden,omitempty"`
}

package validation

import "strings"

// Input maps field names to the string values captured at submit time.
type Input map[string]string

// Get returns the value for name, or "" when absent.
func (in Input) Get(name string) string {
	if in == nil {
		return ""
	}
	return in[name]
}

// FieldErrors maps field names to the message rendered next to that field.
type FieldErrors map[string]string

// FieldRules binds rules to a named field.
type FieldRules struct {
	Name  string
	Rules []Rule
}

// Field is shorthand for building FieldRules.
func Field(name string, rules ...Rule) FieldRules {
	return FieldRules{Name: strings.TrimSpace(name), Rules: rules}
}

// Schema is an immutable, ordered list of field rules.
type Schema struct {
	fields []FieldRules
}

// NewSchema builds a schema; fields without a name are dropped.
func NewSchema(fields ...FieldRules) Schema {
	out := make([]FieldRules, 0, len(fields))
	for _, field := range fields {
		if field.Name == "" {
			continue
		}
		field.Rules = append([]Rule(nil), field.Rules...)
		out = append(out, field)
	}
	return Schema{fields: out}
}

// Fields returns the names of the fields covered by the schema, in order.
func (s Schema) Fields() []string {
	names := make([]string, 0, len(s.fields))
	for _, field := range s.fields {
		names = append(names, field.Name)
	}
	return names
}

// Result is the outcome of a validation pass. Issues holds every failing
// rule's message per field in declaration order.
type Result struct {
	Issues map[string][]string
}

// Valid reports whether no rule failed.
func (r Result) Valid() bool {
	return len(r.Issues) == 0
}

// FieldErrors reduces Issues to one message per field: the first failing
// rule in declaration order.
func (r Result) FieldErrors() FieldErrors {
	if len(r.Issues) == 0 {
		return nil
	}
	out := make(FieldErrors, len(r.Issues))
	for field, messages := range r.Issues {
		if len(messages) > 0 {
			out[field] = messages[0]
		}
	}
	return out
}

// Validate evaluates every rule of every field against input. It never stops
// at the first failure.
func (s Schema) Validate(input Input) Result {
	var issues map[string][]string
	for _, field := range s.fields {
		for _, rule := range field.Rules {
			if rule.holds(field.Name, input) {
				continue
			}
			if issues == nil {
				issues = make(map[string][]string)
			}
			issues[field.Name] = append(issues[field.Name], rule.Message)
		}
	}
	return Result{Issues: issues}
}

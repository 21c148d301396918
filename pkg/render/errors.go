// Package render maps error payloads onto the fields of a form model.
package render

import (
	"sort"
	"strings"

	"github.com/goliatone/go-formflow/pkg/model"
)

// ErrorMapping splits an error payload into field-level and form-level
// messages. Fields holds the first message for each known form field.
type ErrorMapping struct {
	Fields map[string]string
	Form   []string
}

// MapErrorPayload attaches messages to the form's fields by field name.
// Unknown keys become form-level errors so messages are not lost.
func MapErrorPayload(form model.FormModel, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{}
	if len(payload) == 0 {
		return mapping
	}

	known := make(map[string]struct{}, len(form.Fields))
	for _, field := range form.Fields {
		if name := strings.TrimSpace(field.Name); name != "" {
			known[name] = struct{}{}
		}
	}

	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		messages := normalizeMessages(payload[key])
		if len(messages) == 0 {
			continue
		}

		name := strings.TrimSpace(key)
		if _, ok := known[name]; !ok || name == "" {
			mapping.Form = append(mapping.Form, messages...)
			continue
		}
		if mapping.Fields == nil {
			mapping.Fields = make(map[string]string)
		}
		if _, exists := mapping.Fields[name]; !exists {
			mapping.Fields[name] = messages[0]
		}
	}

	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

// MapFieldErrors is MapErrorPayload for single-message maps.
func MapFieldErrors(form model.FormModel, errs map[string]string) ErrorMapping {
	if len(errs) == 0 {
		return ErrorMapping{}
	}
	payload := make(map[string][]string, len(errs))
	for key, message := range errs {
		payload[key] = []string{message}
	}
	return MapErrorPayload(form, payload)
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

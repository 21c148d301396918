package uischema

import (
	"sort"
	"strings"

	"github.com/goliatone/go-formflow/pkg/model"
)

// Decorate applies the stored configuration for form.OperationID: copy,
// labels, placeholders, input kinds and prompt order. Forms without a
// configuration are returned untouched.
func (s *Store) Decorate(form model.FormModel) model.FormModel {
	op, ok := s.Operation(form.OperationID)
	if !ok {
		return form
	}

	out := form
	out.Fields = append([]model.Field(nil), form.Fields...)
	if op.Form.Title != "" {
		out.Title = op.Form.Title
	}
	if op.Form.Submit != "" {
		out.Submit = op.Form.Submit
	}

	for idx := range out.Fields {
		cfg, ok := op.Fields[out.Fields[idx].Name]
		if !ok {
			continue
		}
		field := &out.Fields[idx]
		if cfg.Label != "" {
			field.Label = cfg.Label
		}
		if cfg.Placeholder != "" {
			field.Placeholder = cfg.Placeholder
		}
		if cfg.HelpText != "" {
			field.Description = cfg.HelpText
		}
		if input := strings.ToLower(strings.TrimSpace(cfg.Input)); input != "" {
			field.Input = model.InputKind(input)
		}
		if cfg.Order != nil {
			field.Order = *cfg.Order
		}
		field.Hidden = cfg.Hidden
	}

	sort.SliceStable(out.Fields, func(i, j int) bool {
		return orderKey(out.Fields[i]) < orderKey(out.Fields[j])
	})
	return out
}

// orderKey places unordered fields after ordered ones while keeping their
// relative order.
func orderKey(field model.Field) int {
	if field.Order <= 0 {
		return int(^uint(0) >> 1)
	}
	return field.Order
}

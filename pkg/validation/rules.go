package validation

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// RuleKind tags a Rule variant.
type RuleKind string

const (
	KindRequired    RuleKind = "required"
	KindRequiredIf  RuleKind = "required_if"
	KindEqualsField RuleKind = "equals_field"
	KindEmailFormat RuleKind = "email"
)

// Rule is a single constraint attached to a field. Other names the sibling
// field referenced by RequiredIf and EqualsField.
type Rule struct {
	Kind    RuleKind
	Other   string
	Message string
}

// Required fails when the field is empty.
func Required(message string) Rule {
	return Rule{Kind: KindRequired, Message: message}
}

// RequiredIf fails when the field is empty while other is non-empty.
func RequiredIf(other, message string) Rule {
	return Rule{Kind: KindRequiredIf, Other: other, Message: message}
}

// EqualsField fails when the field's value differs from other's value.
func EqualsField(other, message string) Rule {
	return Rule{Kind: KindEqualsField, Other: other, Message: message}
}

// EmailFormat fails when a non-empty value is not shaped like an e-mail
// address. Empty values pass; pair it with Required to reject them.
func EmailFormat(message string) Rule {
	return Rule{Kind: KindEmailFormat, Message: message}
}

// holds reports whether the rule is satisfied by field's value in input.
func (r Rule) holds(field string, input Input) bool {
	value := input.Get(field)
	switch r.Kind {
	case KindRequired:
		return value != ""
	case KindRequiredIf:
		if input.Get(r.Other) == "" {
			return true
		}
		return value != ""
	case KindEqualsField:
		return value == input.Get(r.Other)
	case KindEmailFormat:
		if value == "" {
			return true
		}
		return emailValidator().Var(value, "email") == nil
	default:
		return true
	}
}

var (
	emailOnce sync.Once
	emailVal  *validator.Validate
)

func emailValidator() *validator.Validate {
	emailOnce.Do(func() {
		emailVal = validator.New()
	})
	return emailVal
}

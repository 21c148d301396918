// Package validation evaluates form input against declarative schemas.
//
// A Schema lists fields and the rules attached to each. Rules are tagged
// variants (Required, RequiredIf, EqualsField, EmailFormat) and Validate
// evaluates every rule of every field before returning, so the result always
// carries the complete set of violations.
package validation

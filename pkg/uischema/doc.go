// Package uischema loads the YAML/JSON UI schema that decorates form models
// built from the booking API contract: labels, placeholders, prompt order,
// secret inputs and the copy shown around each form.
package uischema

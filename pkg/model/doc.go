// Package model defines the form model consumed by form capture surfaces and
// builds it from booking API operations.
package model

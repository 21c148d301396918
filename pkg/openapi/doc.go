// Package openapi exposes the booking API contract: the embedded OpenAPI
// document, the operation wrappers the parser produces and a Registry that
// resolves endpoints by operation id. The kin-openapi backed parser lives
// under internal/openapi to keep that dependency hidden from consumers.
package openapi

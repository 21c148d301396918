// Package api is the HTTP client for the booking API. Endpoints are resolved
// by operation id through the contract registry, so the client never
// hard-codes paths or methods.
package api

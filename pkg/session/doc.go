// Package session holds the signed-in user and API token. The store is safe
// for concurrent use and can persist itself to a JSON file so terminal
// commands share one sign-in.
package session

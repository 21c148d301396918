// Package workflow runs one form submission attempt: validate every field,
// surface field errors or call the remote operation, then report the result
// through a notifier, the session and the navigator.
//
// Each call to Submit is independent. Validation always completes before
// the remote call, so an invalid form never reaches the network.
package workflow

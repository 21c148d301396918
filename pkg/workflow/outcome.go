package workflow

import "github.com/goliatone/go-formflow/pkg/validation"

// Kind tags an Outcome.
type Kind int

const (
	// ValidationFailure means at least one field was invalid. No request was
	// sent.
	ValidationFailure Kind = iota + 1
	// RemoteFailure means the remote operation returned an error.
	RemoteFailure
	// Success means the remote operation completed.
	Success
)

func (k Kind) String() string {
	switch k {
	case ValidationFailure:
		return "validation_failure"
	case RemoteFailure:
		return "remote_failure"
	case Success:
		return "success"
	default:
		return "unknown"
	}
}

// Outcome is the single result of a submission attempt. Errors is set only
// for ValidationFailure, Reason only for RemoteFailure and Data only for
// Success.
type Outcome[T any] struct {
	Kind   Kind
	Errors validation.FieldErrors
	Reason error
	Data   T
}

// Invalid builds a ValidationFailure outcome.
func Invalid[T any](errs validation.FieldErrors) Outcome[T] {
	return Outcome[T]{Kind: ValidationFailure, Errors: errs}
}

// Failed builds a RemoteFailure outcome.
func Failed[T any](reason error) Outcome[T] {
	return Outcome[T]{Kind: RemoteFailure, Reason: reason}
}

// Succeeded builds a Success outcome.
func Succeeded[T any](data T) Outcome[T] {
	return Outcome[T]{Kind: Success, Data: data}
}

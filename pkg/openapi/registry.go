package openapi

import (
	"errors"
	"fmt"
	"sort"
)

// Operation ids declared by the booking API contract.
const (
	OperationCreateSession = "createSession"
	OperationUpdateProfile = "updateProfile"
	OperationUpdateAvatar  = "updateAvatar"
)

// ErrUnknownOperation is returned when an operation id is not part of the
// loaded contract.
var ErrUnknownOperation = errors.New("openapi: unknown operation")

// Registry resolves operations by id.
type Registry struct {
	operations map[string]Operation
}

// NewRegistry wraps parsed operations.
func NewRegistry(operations map[string]Operation) *Registry {
	cloned := make(map[string]Operation, len(operations))
	for id, op := range operations {
		cloned[id] = op
	}
	return &Registry{operations: cloned}
}

// Operation returns the operation registered under id.
func (r *Registry) Operation(id string) (Operation, error) {
	if r == nil {
		return Operation{}, fmt.Errorf("%w: %s", ErrUnknownOperation, id)
	}
	op, ok := r.operations[id]
	if !ok {
		return Operation{}, fmt.Errorf("%w: %s", ErrUnknownOperation, id)
	}
	return op, nil
}

// IDs lists the registered operation ids in sorted order.
func (r *Registry) IDs() []string {
	if r == nil {
		return nil
	}
	ids := make([]string, 0, len(r.operations))
	for id := range r.operations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

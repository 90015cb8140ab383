package types

import "fmt"

// ErrorKind classifies a domain error so transport adapters can map it to a
// wire status without parsing messages.
type ErrorKind string

const (
	KindNotFound         ErrorKind = "not_found"
	KindDuplicateName    ErrorKind = "duplicate_name"
	KindSelfLink         ErrorKind = "self_link"
	KindAlreadyLinked    ErrorKind = "already_linked"
	KindHasActiveEdges   ErrorKind = "has_active_edges"
	KindValidationFailed ErrorKind = "validation_failed"
	KindConflict         ErrorKind = "conflict"
)

// DomainError is the only error type the graph service returns to callers.
// Field is set for validation failures, empty otherwise.
type DomainError struct {
	Kind    ErrorKind `json:"kind"`
	Field   string    `json:"field,omitempty"`
	Message string    `json:"message"`
}

func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s [%s]: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// KindOf returns the kind of a domain error, or an empty kind for any other
// error value.
func KindOf(err error) ErrorKind {
	if de, ok := err.(*DomainError); ok {
		return de.Kind
	}
	return ""
}

// NotFound builds a not-found domain error.
func NotFound(format string, args ...interface{}) *DomainError {
	return &DomainError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// DuplicateName reports a display or hobby name already held elsewhere.
func DuplicateName(name string) *DomainError {
	return &DomainError{Kind: KindDuplicateName, Field: "name", Message: fmt.Sprintf("name %q is already in use", name)}
}

// SelfLink rejects a friendship whose endpoints are the same user.
func SelfLink(id string) *DomainError {
	return &DomainError{Kind: KindSelfLink, Message: fmt.Sprintf("user %s cannot befriend itself", id)}
}

// AlreadyLinked reports an existing friendship for the pair.
func AlreadyLinked(lo, hi string) *DomainError {
	return &DomainError{Kind: KindAlreadyLinked, Message: fmt.Sprintf("users %s and %s are already friends", lo, hi)}
}

// HasActiveEdges blocks user deletion while friendships still touch the user.
func HasActiveEdges(id string, count int64) *DomainError {
	return &DomainError{Kind: KindHasActiveEdges, Message: fmt.Sprintf("user %s still has %d friendship(s); remove them first", id, count)}
}

// ValidationFailed reports a field-level constraint violation.
func ValidationFailed(field, reason string) *DomainError {
	return &DomainError{Kind: KindValidationFailed, Field: field, Message: reason}
}

// Conflict is the fallback for storage races the service cannot attribute to
// a specific invariant.
func Conflict(format string, args ...interface{}) *DomainError {
	return &DomainError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

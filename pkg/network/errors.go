package network

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel causes for rejected operations. Rejections are reported as
// diagnostics, never returned to callers of AddPerson or AddFriendship.
var (
	ErrPersonExists       = errors.New("person already exists")
	ErrPersonNotFound     = errors.New("person not found")
	ErrSelfFriendship     = errors.New("person cannot befriend themselves")
	ErrInvalidName        = errors.New("invalid person name")
	ErrInvariantViolation = errors.New("network invariant violated")
)

// Diagnostic kinds, used as metric labels
const (
	KindPersonExists   = "person_exists"
	KindPersonNotFound = "person_not_found"
	KindSelfFriendship = "self_friendship"
	KindInvalidName    = "invalid_name"
	KindUnknown        = "unknown"
)

// NetworkError describes why a network operation was rejected.
type NetworkError struct {
	Op     string   // Operation that was rejected (e.g., "add_person")
	People []string // Names as passed by the caller
	Cause  error    // One of the sentinel errors above
	Detail string   // Extra context, such as a validation message
}

func (e *NetworkError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Op, strings.Join(e.People, ", "), e.Cause)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Unwrap returns the underlying cause for error chain support.
func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *NetworkError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// Diagnostic returns the console line printed for this rejection.
func (e *NetworkError) Diagnostic() string {
	name := func(i int) string {
		if i < len(e.People) {
			return e.People[i]
		}
		return ""
	}

	switch {
	case errors.Is(e.Cause, ErrPersonExists):
		return fmt.Sprintf("%s already exists in the network.", name(0))
	case errors.Is(e.Cause, ErrPersonNotFound):
		return fmt.Sprintf("Friendship not created. One or both people don't exist: %s, %s", name(0), name(1))
	case errors.Is(e.Cause, ErrSelfFriendship):
		return fmt.Sprintf("Friendship not created. A person cannot befriend themselves: %s", name(0))
	case errors.Is(e.Cause, ErrInvalidName):
		return fmt.Sprintf("Person not added. Invalid name %q: %s", name(0), e.Detail)
	default:
		return e.Error()
	}
}

// ErrorBuilder provides a fluent interface for building NetworkErrors.
type ErrorBuilder struct {
	err NetworkError
}

// NewError creates a new error builder for the given operation.
func NewError(op string) *ErrorBuilder {
	return &ErrorBuilder{err: NetworkError{Op: op}}
}

// People records the names involved in the operation.
func (b *ErrorBuilder) People(names ...string) *ErrorBuilder {
	b.err.People = names
	return b
}

// Cause sets the underlying sentinel.
func (b *ErrorBuilder) Cause(err error) *ErrorBuilder {
	b.err.Cause = err
	return b
}

// Detail sets additional context.
func (b *ErrorBuilder) Detail(detail string) *ErrorBuilder {
	b.err.Detail = detail
	return b
}

// Build returns the constructed NetworkError.
func (b *ErrorBuilder) Build() *NetworkError {
	return &b.err
}

// Kind maps an error to its diagnostic kind.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrPersonExists):
		return KindPersonExists
	case errors.Is(err, ErrPersonNotFound):
		return KindPersonNotFound
	case errors.Is(err, ErrSelfFriendship):
		return KindSelfFriendship
	case errors.Is(err, ErrInvalidName):
		return KindInvalidName
	default:
		return KindUnknown
	}
}

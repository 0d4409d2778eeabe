// Package validation defines the closed error taxonomy shared by every
// command and query in the service. An operation either succeeds with a
// value or fails with exactly one *Error carrying the kind of violation
// and an ordered list of field-level failures. Callers branch on the kind
// to decide transport-level mapping; tests assert on the field paths to
// pin down which rule fired.
package validation

import (
	"fmt"
	"strings"
)

// Kind discriminates the failure taxonomy. The set is closed: every
// expected failure in the system is one of these three.
type Kind int

const (
	// KindNotFound reports that a referenced entity (room, user) does not
	// exist or is not reachable from the given scope.
	KindNotFound Kind = iota
	// KindBadRequest reports a well-formed request that violates a state
	// invariant, or an unclassified persistence failure.
	KindBadRequest
	// KindNotAuthorized reports that the acting user lacks the privilege
	// required for the requested mutation.
	KindNotAuthorized
)

// String returns the canonical name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindNotAuthorized:
		return "not_authorized"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Failure is a single field-level validation failure. Field identifies
// the offending input or state path ("userId", "room.ClosedOn"); it may
// be empty only for wrapped infrastructure faults.
type Failure struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a failed outcome: one kind, at least one failure, in order.
type Error struct {
	Kind     Kind      `json:"kind"`
	Failures []Failure `json:"failures"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	for i, f := range e.Failures {
		if i == 0 {
			sb.WriteString(": ")
		} else {
			sb.WriteString("; ")
		}
		if f.Field != "" {
			sb.WriteString(f.Field)
			sb.WriteString(": ")
		}
		sb.WriteString(f.Message)
	}
	return sb.String()
}

// NotFound builds a KindNotFound error for a single field.
func NotFound(field, message string) *Error {
	return &Error{Kind: KindNotFound, Failures: []Failure{{Field: field, Message: message}}}
}

// BadRequest builds a KindBadRequest error for a single field.
func BadRequest(field, message string) *Error {
	return &Error{Kind: KindBadRequest, Failures: []Failure{{Field: field, Message: message}}}
}

// NotAuthorized builds a KindNotAuthorized error for a single field.
func NotAuthorized(field, message string) *Error {
	return &Error{Kind: KindNotAuthorized, Failures: []Failure{{Field: field, Message: message}}}
}

// BadRequestFailures builds a KindBadRequest error from pre-assembled
// failures. The list must not be empty.
func BadRequestFailures(failures ...Failure) *Error {
	return &Error{Kind: KindBadRequest, Failures: failures}
}

// HasFieldFailure reports whether the error carries a failure for the
// given field path. Intended for tests and callers that need to know
// which rule fired.
func (e *Error) HasFieldFailure(field string) bool {
	for _, f := range e.Failures {
		if f.Field == field {
			return true
		}
	}
	return false
}

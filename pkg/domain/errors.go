package domain

import (
	"errors"
	"fmt"
)

// ErrorKind enumerates the closed set of failure classes the ledger exposes.
// Anything the service cannot classify stays ErrorKindInternal and propagates
// untouched to the boundary.
type ErrorKind uint8

const (
	// ErrorKindInternal covers unclassified failures such as store transport
	// errors or malformed input.
	ErrorKindInternal ErrorKind = iota
	// ErrorKindNotFound signals a client id or account name that did not resolve.
	ErrorKindNotFound
	// ErrorKindInsufficientFunds signals a withdrawal exceeding the available balance.
	ErrorKindInsufficientFunds
)

// String returns a short label for the kind, used in logs.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindNotFound:
		return "not_found"
	case ErrorKindInsufficientFunds:
		return "insufficient_funds"
	default:
		return "internal"
	}
}

// Error is the domain error carried across the service boundary. It pairs a
// kind with a human-readable message naming the resource or balance involved,
// so the boundary can switch on the kind exhaustively instead of inspecting
// error types.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

// NewNotFound builds a not-found error for a missing client or account.
func NewNotFound(format string, args ...any) *Error {
	return &Error{Kind: ErrorKindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewInsufficientFunds builds the error returned when a withdrawal exceeds
// the available balance.
func NewInsufficientFunds(format string, args ...any) *Error {
	return &Error{Kind: ErrorKindInsufficientFunds, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the error kind, traversing wrapped errors. Non-domain
// errors classify as ErrorKindInternal.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ErrorKindInternal
}

// IsNotFound reports whether err classifies as a missing resource.
func IsNotFound(err error) bool { return KindOf(err) == ErrorKindNotFound }

// IsInsufficientFunds reports whether err classifies as an overdraw attempt.
func IsInsufficientFunds(err error) bool { return KindOf(err) == ErrorKindInsufficientFunds }

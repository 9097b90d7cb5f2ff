// Package errs defines the error kinds shared across nbtkit's packages.
//
// The NBT codec and the region file engine report failures through four
// kinds: InvalidArg (bad coordinates, bad options, malformed input tree),
// Read (I/O read failure, truncation), Write (I/O write failure,
// out-of-space), and Type (the wire contains an unknown tag code, or a
// value doesn't match its declared type). Every error produced anywhere
// in nbtkit wraps one of these kinds, so callers can branch on
// coarse-grained kind with Is, or on a specific sentinel with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies why an operation failed.
type Kind uint8

const (
	// InvalidArg means the caller passed bad coordinates, bad options, or
	// a value tree that violates an NBT invariant.
	InvalidArg Kind = iota
	// Read means the underlying stream or file could not be read, or was
	// truncated before a complete value could be decoded.
	Read
	// Write means the underlying stream or file could not be written,
	// including out-of-space conditions.
	Write
	// Type means the wire contains an unknown tag code, or a list
	// element's value doesn't match the list's declared element type.
	Type
)

// String returns a short, lowercase name for the kind.
func (k Kind) String() string {
	switch k {
	case InvalidArg:
		return "invalid argument"
	case Read:
		return "read"
	case Write:
		return "write"
	case Type:
		return "type"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by nbtkit packages.
type Error struct {
	Kind Kind
	Op   string // e.g. "region.SetChunk", "codec.ReadRoot"
	Msg  string
	Err  error // wrapped cause, or nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	}

	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an *Error with the given kind, operation name, and message.
func New(kind Kind, op, msg string) error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

// Newf creates an *Error with a formatted message.
func Newf(kind Kind, op, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates an *Error of the given kind, wrapping cause.
func Wrap(kind Kind, op string, cause error) error {
	if cause == nil {
		return nil
	}

	return &Error{Kind: kind, Op: op, Msg: cause.Error(), Err: cause}
}

// Is reports whether err is (or wraps) an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}

	return false
}

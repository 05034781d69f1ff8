package catalog

import (
	"errors"
	"fmt"
)

// Kind classifies a failure at the tool-call boundary
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindNotImplemented
	KindClientInput
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindNotImplemented:
		return "not_implemented"
	case KindClientInput:
		return "client_input"
	default:
		return "internal"
	}
}

// Error is the only error type that leaves the façade
type Error struct {
	Kind    Kind
	Tool    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports a tool name absent from the catalog
func NotFound(tool string) *Error {
	return &Error{Kind: KindNotFound, Tool: tool, Message: fmt.Sprintf("tool %s not found", tool)}
}

// NotImplemented reports an advertised tool without a handler
func NotImplemented(tool string) *Error {
	return &Error{Kind: KindNotImplemented, Tool: tool, Message: fmt.Sprintf("tool %s not implemented", tool)}
}

// ClientInputf reports a caller mistake: missing or malformed parameters,
// or a request that cannot be satisfied as phrased.
func ClientInputf(format string, args ...any) *Error {
	return &Error{Kind: KindClientInput, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps any other failure, keeping the original message.
func Internal(tool string, err error) *Error {
	return &Error{Kind: KindInternal, Tool: tool, Err: err}
}

// KindOf extracts the Kind carried by err; unknown errors are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

package mgusdk

import (
	"errors"
	"fmt"
)

// Kind classifies a failed provider call.
type Kind string

const (
	// KindConfig means required credentials are missing. No network I/O was attempted.
	KindConfig Kind = "config_error"

	// KindAuth means an access token could not be obtained or refreshed.
	KindAuth Kind = "auth_error"

	// KindTransport means the HTTP round trip itself failed (DNS, connect, timeout).
	KindTransport Kind = "transport_error"

	// KindAPI means the provider answered with a status code >= 400.
	KindAPI Kind = "api_error"

	// KindDecode means a body could not be encoded or decoded as JSON.
	KindDecode Kind = "decode_error"
)

// UnknownErrorMessage is used when a provider error body carries no message.
const UnknownErrorMessage = "Unknown error"

// Sentinel errors for use with errors.Is. Every *Error matches the sentinel
// of its Kind.
var (
	ErrConfig    = &Error{Kind: KindConfig, Message: "configuration error"}
	ErrAuth      = &Error{Kind: KindAuth, Message: "authentication error"}
	ErrTransport = &Error{Kind: KindTransport, Message: "transport error"}
	ErrAPI       = &Error{Kind: KindAPI, Message: "api error"}
	ErrDecode    = &Error{Kind: KindDecode, Message: "decode error"}
)

// Error is the failure half of every Dispatch result. Callers receive either
// the decoded payload or an *Error, never both.
type Error struct {
	// Kind classifies the failure.
	Kind Kind

	// Message is a human-readable description. For KindAPI it is the
	// provider's "message" field, or UnknownErrorMessage.
	Message string

	// StatusCode is the provider HTTP status for KindAPI (0 otherwise).
	StatusCode int

	// Body is the decoded provider error body for KindAPI. When the body is
	// not JSON it holds the raw body as a string.
	Body any

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Kind, e.Message, e.StatusCode)
	}
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func newError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Err: cause}
}

// Package apperr defines the error kinds a component operation can fail
// with. Services return these; only the HTTP layer maps them to status codes.
package apperr

import "fmt"

type Kind int

const (
	KindValidation Kind = iota + 1 // malformed or missing client input
	KindAuth                       // bad credentials or invalid/expired token
	KindNotFound                   // resource absent or not owned by caller
	KindConflict                   // uniqueness violation
	KindConfig                     // missing upstream credential
	KindUpstreamFormat             // model returned unparseable or empty output
	KindInternal                   // unexpected fault
)

// Error carries a kind, a client-facing message and optional detail. Raw is
// only set for upstream-format failures and holds the offending model output.
type Error struct {
	Kind    Kind
	Message string
	Details string
	Raw     string
	Err     error
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Config(message string) *Error {
	return &Error{Kind: KindConfig, Message: message}
}

func UpstreamFormat(message, details, raw string) *Error {
	return &Error{Kind: KindUpstreamFormat, Message: message, Details: details, Raw: raw}
}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of err, or KindInternal for anything that is not an
// *Error.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindInternal
}

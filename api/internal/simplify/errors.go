package simplify

import "errors"

// Kind classifies why a request was rejected.
type Kind string

const (
	EmptyInput         Kind = "EmptyInput"
	TextTooLong        Kind = "TextTooLong"
	InvalidComplexity  Kind = "InvalidComplexity"
	ServiceUnavailable Kind = "ServiceUnavailable"
	UpstreamFailure    Kind = "UpstreamFailure"
	InternalError      Kind = "InternalError"
)

// Error is a rejection with a caller-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// IsClientError reports whether the caller's input caused the rejection.
func (k Kind) IsClientError() bool {
	switch k {
	case EmptyInput, TextTooLong, InvalidComplexity:
		return true
	}
	return false
}

// KindOf returns the Kind of err, or InternalError for anything that is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return InternalError
}

func reject(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

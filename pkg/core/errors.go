package core

import (
	"fmt"

	"github.com/go-faster/errors"
)

// Code classifies a payments failure.
type Code string

const (
	// CodeInvalidArgument is malformed or policy-violating input detected before any remote call.
	CodeInvalidArgument Code = "invalid_argument"
	// CodeParseError is a malformed JSON or wire payload.
	CodeParseError Code = "parse_error"
	// CodeNotFound means a referenced invoice, payment form or message no longer resolves.
	CodeNotFound Code = "not_found"
	// CodeRemoteRejected means the backend explicitly rejected a step.
	CodeRemoteRejected Code = "remote_rejected"
	// CodeTransportFailure means the exchange with the backend could not be completed.
	CodeTransportFailure Code = "transport_failure"
	// CodeInternal is used for errors that don't carry a Code.
	CodeInternal Code = "internal"
)

// Error is returned by every payments operation.
// Message is safe to show to the end user; for CodeRemoteRejected it is the backend's text unchanged.
type Error struct {
	Code    Code
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorCode returns the Code of err, or CodeInternal for foreign errors.
func ErrorCode(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// ErrorMessage returns the user-facing message of err.
func ErrorMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

func IsCode(err error, code Code) bool {
	return ErrorCode(err) == code
}

func InvalidArgument(op, format string, args ...any) error {
	return &Error{Code: CodeInvalidArgument, Op: op, Message: fmt.Sprintf(format, args...)}
}

func ParseError(err error, op, message string) error {
	return &Error{Code: CodeParseError, Op: op, Message: message, Err: err}
}

func NotFound(op, format string, args ...any) error {
	return &Error{Code: CodeNotFound, Op: op, Message: fmt.Sprintf(format, args...)}
}

func RemoteRejected(err error, op, message string) error {
	return &Error{Code: CodeRemoteRejected, Op: op, Message: message, Err: err}
}

func Internal(err error, op, message string) error {
	return &Error{Code: CodeInternal, Op: op, Message: message, Err: err}
}

func TransportFailure(err error, op string) error {
	return &Error{Code: CodeTransportFailure, Op: op, Message: "failed to reach payments backend", Err: err}
}

// WithOp returns a copy of a payments error attributed to op; foreign errors are returned as is.
func WithOp(err error, op string) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	c := *e
	c.Op = op
	return &c
}

// Package errors provides a structured error type with wrapping and metadata
package errors

// Always import the project errors package as perr (platform/errors)

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode defines supported error codes used across the converter and its transports
// Values are stable for wire compatibility; add sparingly
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodePanic is for panics recovered by middleware
	ErrorCodePanic

	// ErrorCodeValidation is for request validation failures
	ErrorCodeValidation

	// ErrorCodeJSON is for JSON parsing errors
	ErrorCodeJSON

	// ErrorCodeNotFound is for missing routes or resources
	ErrorCodeNotFound

	// ErrorCodeUsage is for wrong command line usage (argument count, unknown flags)
	ErrorCodeUsage

	// ErrorCodeUnsupportedTimestampLength is for numeric input whose digit count isn't 10, 13, 16 or 19
	ErrorCodeUnsupportedTimestampLength

	// ErrorCodeTimestampOutOfRange is for numeric input that resolves outside the representable range
	ErrorCodeTimestampOutOfRange

	// ErrorCodeUnsupportedDateValue is for input that is neither now, an integer nor RFC3339
	ErrorCodeUnsupportedDateValue

	// ErrorCodeInvalidOperation is for operation strings shorter than 3 characters
	ErrorCodeInvalidOperation

	// ErrorCodeUnrecognizedSymbol is for an operation sign other than + or -
	ErrorCodeUnrecognizedSymbol

	// ErrorCodeUnsupportedUnit is for an operation unit other than s, m, h or d
	ErrorCodeUnsupportedUnit

	// ErrorCodeInvalidValue is for an operation magnitude that isn't a valid int64 duration
	ErrorCodeInvalidValue
)

var codeNames = map[ErrorCode]string{
	ErrorCodeUnknown:                    "unknown",
	ErrorCodePanic:                      "panic",
	ErrorCodeValidation:                 "validation",
	ErrorCodeJSON:                       "json",
	ErrorCodeNotFound:                   "not_found",
	ErrorCodeUsage:                      "usage",
	ErrorCodeUnsupportedTimestampLength: "unsupported_timestamp_length",
	ErrorCodeTimestampOutOfRange:        "timestamp_out_of_range",
	ErrorCodeUnsupportedDateValue:       "unsupported_date_value",
	ErrorCodeInvalidOperation:           "invalid_operation",
	ErrorCodeUnrecognizedSymbol:         "unrecognized_symbol",
	ErrorCodeUnsupportedUnit:            "unsupported_unit",
	ErrorCodeInvalidValue:               "invalid_value",
}

// String returns the snake_case name of the code, used in logs
func (c ErrorCode) String() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return fmt.Sprintf("code(%d)", uint16(c))
}

// IsConversion reports whether c belongs to the date/operation parsing taxonomy
func (c ErrorCode) IsConversion() bool {
	return c >= ErrorCodeUnsupportedTimestampLength && c <= ErrorCodeInvalidValue
}

// HTTPStatusCode turns an ErrorCode into an http status code
func HTTPStatusCode(c ErrorCode) int {
	switch {
	case c.IsConversion():
		return http.StatusUnprocessableEntity
	case c == ErrorCodeValidation, c == ErrorCodeJSON, c == ErrorCodeUsage:
		return http.StatusBadRequest
	case c == ErrorCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ExitCodeOf turns an ErrorCode into a process exit status
// 0 is never returned; usage errors get 2 like most unix tools
func ExitCodeOf(c ErrorCode) int {
	if c == ErrorCodeUsage {
		return 2
	}
	return 1
}

// Error is the structured error type with wrapping and metadata
// msg is human/developer facing; code is machine facing
// field is optional (for validation); op is optional operation tag
// orig is the wrapped cause
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
	op    string
}

// Wire is the JSON-serializable form returned by the API
type Wire struct {
	Code    ErrorCode `json:"code"`
	Kind    string    `json:"kind,omitempty"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Message returns the message without the wrapped cause
func (e *Error) Message() string { return e.msg }

// Field returns the offending field, if any
func (e *Error) Field() string { return e.field }

// Op returns the operation label, if set
func (e *Error) Op() string { return e.op }

// ToWire converts an *Error to a Wire payload
func (e *Error) ToWire() Wire {
	return Wire{Code: e.code, Kind: e.code.String(), Message: e.msg, Field: e.field}
}

// WireFrom converts any error into a Wire payload with best-effort mapping
// If err is nil, returns the zero-value Wire (no error)
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnknown, Kind: ErrorCodeUnknown.String(), Message: err.Error()}
}

// Root returns the deepest wrapped cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// CodeOf extracts an ErrorCode from any error, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus returns the mapped HTTP status for any error
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// ExitCode returns the process exit status for any error, 0 for nil
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return ExitCodeOf(CodeOf(err))
}

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Mutators (copy-on-write)

// WithField attaches a field to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// WithOp attaches an operation label to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// Constructors

// New returns a new *Error with the given code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with code and formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig with code and message
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf returns a new *Error that wraps orig with code and formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// Sugar

// JSONErrf returns a JSON error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// Validationf returns a validation error
func Validationf(format string, a ...any) error { return Newf(ErrorCodeValidation, format, a...) }

// PanicErrf returns a panic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// NotFoundf returns a not found error
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// Usagef returns a command line usage error
func Usagef(format string, a ...any) error { return Newf(ErrorCodeUsage, format, a...) }

// HTTP bundles status + wire in one shot (nice for handlers)
func HTTP(err error) (int, Wire) {
	if err == nil {
		return http.StatusOK, Wire{}
	}
	return HTTPStatus(err), WireFrom(err)
}

package cdpdoc

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	ECONFLICT    = "conflict"        // record already exists
	EEMPTYDOC    = "empty_document"  // document has no extractable text
	EINTERNAL    = "internal"        // infrastructure failure
	EINVALID     = "invalid"         // validation failed
	ENOTFOUND    = "not_found"       // record does not exist
	EUNAVAILABLE = "index_not_built" // queried before a successful index build
)

// Error represents an application-specific error. Errors carry a machine
// readable code and a human readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is safe to show to an end user.
	Message string
}

// Error implements the error interface. Not user friendly; use ErrorMessage
// for text intended for end users.
func (e *Error) Error() string {
	return fmt.Sprintf("cdpdoc error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf returns an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

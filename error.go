package pagesift

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to map a failure to a user-facing message at the
// pipeline boundary; machine-readable codes, human-readable messages.
const (
	ECONNECTION  = "connection"   // transport-level connection failure
	EFORBIDDEN   = "forbidden"    // HTTP 403
	EINTERNAL    = "internal"     // unexpected internal fault
	EINVALID     = "invalid"      // validation failed
	ENOCONTENT   = "nocontent"    // no qualifying article content found
	ENOTFOUND    = "not_found"    // HTTP 404
	ERATELIMITED = "rate_limited" // HTTP 429
	EREMOTE      = "remote"       // other HTTP error status
	ESERVER      = "server"       // HTTP 5xx
	ETIMEOUT     = "timeout"      // transport-level timeout
	EUNSUPPORTED = "unsupported"  // non-HTML content type
)

// Error represents an application-specific error.
type Error struct {
	// Code is one of the machine-readable codes above.
	Code string

	// Message is a human-readable description safe to show to users.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("pagesift error: code=%s message=%s", e.Code, e.Message)
}

// Errorf constructs an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns the empty string.
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
// Non-application errors return a generic message; nil returns the empty
// string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "an internal error has occurred"
}

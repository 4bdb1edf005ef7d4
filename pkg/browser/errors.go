package browser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind identifies the failure category reported to callers.
// The set is closed: every error leaving the dispatcher carries one of these.
type ErrorKind string

const (
	// KindValidation indicates malformed or missing arguments. Validation
	// failures never reach the session.
	KindValidation ErrorKind = "validation_error"

	// KindSession indicates a launch or restart failure, or an
	// unrecoverable browser crash.
	KindSession ErrorKind = "session_error"

	// KindElementNotFound indicates a selector resolved to zero matches
	// where at least one was required.
	KindElementNotFound ErrorKind = "element_not_found"

	// KindNotInteractable indicates an element never became visible or
	// actionable within the timeout.
	KindNotInteractable ErrorKind = "element_not_interactable"

	// KindWaitTimeout indicates an explicit wait condition was not met in time.
	KindWaitTimeout ErrorKind = "wait_timeout"

	// KindNavigationTimeout indicates a navigation or reload timed out.
	KindNavigationTimeout ErrorKind = "navigation_timeout"

	// KindScript indicates a runtime failure inside evaluated page code.
	KindScript ErrorKind = "script_error"

	// KindSerialization indicates an evaluation result that cannot cross
	// the serialization boundary (functions, cycles, native handles).
	KindSerialization ErrorKind = "serialization_error"

	// KindUnknown covers unexpected internal failures. Always logged,
	// never silently swallowed.
	KindUnknown ErrorKind = "unknown"
)

// Error is the typed error surfaced through the tool result envelope.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(kind ErrorKind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// ValidationErrorf reports malformed arguments.
func ValidationErrorf(format string, args ...interface{}) *Error {
	return newError(KindValidation, nil, format, args...)
}

// SessionErrorf reports a session lifecycle failure.
func SessionErrorf(cause error, format string, args ...interface{}) *Error {
	return newError(KindSession, cause, format, args...)
}

// ElementNotFoundf reports a selector with zero matches.
func ElementNotFoundf(format string, args ...interface{}) *Error {
	return newError(KindElementNotFound, nil, format, args...)
}

// NotInteractablef reports an actionability timeout.
func NotInteractablef(cause error, format string, args ...interface{}) *Error {
	return newError(KindNotInteractable, cause, format, args...)
}

// WaitTimeoutf reports an unmet wait condition.
func WaitTimeoutf(format string, args ...interface{}) *Error {
	return newError(KindWaitTimeout, nil, format, args...)
}

// NavigationTimeoutf reports a navigation deadline.
func NavigationTimeoutf(cause error, format string, args ...interface{}) *Error {
	return newError(KindNavigationTimeout, cause, format, args...)
}

// ScriptErrorf reports a runtime failure in evaluated code.
func ScriptErrorf(cause error, format string, args ...interface{}) *Error {
	return newError(KindScript, cause, format, args...)
}

// SerializationErrorf reports an unrepresentable evaluation result.
func SerializationErrorf(format string, args ...interface{}) *Error {
	return newError(KindSerialization, nil, format, args...)
}

// Unknownf wraps an unexpected internal failure.
func Unknownf(cause error, format string, args ...interface{}) *Error {
	return newError(KindUnknown, cause, format, args...)
}

// Classify maps any error to a typed *Error. Errors that already carry a
// kind pass through unchanged; everything else becomes Unknown.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}
	return Unknownf(err, "internal failure")
}

// isDriverTimeout reports whether a playwright error is a timeout. The
// driver does not expose a sentinel, so the message is the contract
// ("Timeout 30000ms exceeded").
func isDriverTimeout(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Timeout")
}

// isTargetClosed reports whether a playwright error indicates the page or
// browser went away underneath us.
func isTargetClosed(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Target closed") ||
		strings.Contains(msg, "Target page, context or browser has been closed") ||
		strings.Contains(msg, "browser has been closed")
}

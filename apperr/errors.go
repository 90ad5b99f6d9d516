package apperr

import (
	"errors"
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// Domain is the errdetails domain attached to transport faults.
const Domain = "capbridge.apps.v0"

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Human-readable message, sent verbatim in error fields
	Metadata map[string]string // Additional context for the host
	Cause    error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" && e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Errorf creates a domain error with a formatted message.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Execution reports a failed handler operation.
func Execution(message string) *Error {
	return New(CodeExecution, message)
}

// NotFound reports a missing resource.
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// InvalidInput reports malformed input.
func InvalidInput(message string) *Error {
	return New(CodeInvalidInput, message)
}

// CodeOf returns the code carried by err, CodeUnknown for foreign errors and
// "" for nil.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeUnknown
}

// Status converts err into a gRPC status error for failures that happen before
// a response envelope exists. Errors that already carry a gRPC status pass
// through unchanged.
func Status(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	code := CodeOf(err)
	var metadata map[string]string
	var domainErr *Error
	if errors.As(err, &domainErr) {
		metadata = domainErr.Metadata
	}
	st := status.New(code.GRPCCode(), err.Error())
	detailed, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   string(code),
		Domain:   Domain,
		Metadata: metadata,
	})
	if detailErr != nil {
		return st.Err()
	}
	return detailed.Err()
}

// Package apperr provides the domain error type capability handlers return.
//
// Bridges encode a handler error into the response payload's error field; the
// code only matters when no response envelope exists yet (a stream failing to
// open), where Status turns it into a gRPC status.
package apperr

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unclassified error.
	CodeUnknown Code = "UNKNOWN"
	// CodeExecution marks a handler operation that ran and failed.
	CodeExecution Code = "EXECUTION"
	// CodeInvalidInput marks malformed or missing input.
	CodeInvalidInput Code = "INVALID_INPUT"
	// CodeNotFound marks a missing resource (schedule name, request id).
	CodeNotFound Code = "NOT_FOUND"
	// CodeAlreadyExists marks a unique-name conflict.
	CodeAlreadyExists Code = "ALREADY_EXISTS"
	// CodeUnavailable marks a dependency the handler cannot reach.
	CodeUnavailable Code = "UNAVAILABLE"
	// CodeUnimplemented marks an optional operation the handler lacks.
	CodeUnimplemented Code = "UNIMPLEMENTED"
	// CodeInternal marks a handler bug or unexpected state.
	CodeInternal Code = "INTERNAL"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeInvalidInput:
		return codes.InvalidArgument
	case CodeNotFound:
		return codes.NotFound
	case CodeAlreadyExists:
		return codes.AlreadyExists
	case CodeUnavailable:
		return codes.Unavailable
	case CodeUnimplemented:
		return codes.Unimplemented
	case CodeExecution:
		return codes.Aborted
	default:
		return codes.Internal
	}
}

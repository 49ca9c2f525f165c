package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind is the machine-readable classification of a pipeline failure.
type Kind string

// The full failure taxonomy. ServiceUnavailable is the only transient kind;
// retry policy belongs to the caller, never to the pipeline.
const (
	KindUnsupportedFormat  Kind = "UNSUPPORTED_FORMAT"
	KindMalformedInput     Kind = "MALFORMED_INPUT"
	KindEmptyInput         Kind = "EMPTY_INPUT"
	KindPatientNotFound    Kind = "PATIENT_NOT_FOUND"
	KindExtractionFailed   Kind = "EXTRACTION_FAILED"
	KindServiceUnavailable Kind = "SERVICE_UNAVAILABLE"
	KindSchemaViolation    Kind = "SCHEMA_VIOLATION"
	KindPersistenceFailure Kind = "PERSISTENCE_FAILURE"
)

// AppError carries a Kind plus a human-readable message and optional cause.
type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// E constructs an AppError.
func E(kind Kind, message string, cause error) *AppError {
	return &AppError{Kind: kind, Message: message, Cause: cause}
}

// Ef constructs an AppError with a formatted message and no cause.
func Ef(kind Kind, format string, args ...any) *AppError {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the Kind from err, or "" when err carries none.
func KindOf(err error) Kind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Retryable reports whether the caller may retry the same input unchanged.
func Retryable(err error) bool {
	return IsKind(err, KindServiceUnavailable)
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// ToStatus maps an AppError (or any error) to a gRPC status error.
func ToStatus(err error) error {
	var ae *AppError
	if !errors.As(err, &ae) {
		return status.Error(codes.Internal, err.Error())
	}
	switch ae.Kind {
	case KindUnsupportedFormat, KindMalformedInput, KindEmptyInput:
		return status.Error(codes.InvalidArgument, ae.Error())
	case KindPatientNotFound:
		return status.Error(codes.NotFound, ae.Error())
	case KindServiceUnavailable:
		return status.Error(codes.Unavailable, ae.Error())
	case KindExtractionFailed, KindSchemaViolation:
		return status.Error(codes.FailedPrecondition, ae.Error())
	default:
		return status.Error(codes.Internal, ae.Error())
	}
}

// gRPC error helpers for request validation outside the pipeline.
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

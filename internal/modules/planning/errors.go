package planning

import (
	"errors"
	"fmt"
)

// Code is the caller-visible failure reason of a pipeline run.
type Code string

const (
	CodeResolutionFailed      Code = "resolution_failed"
	CodeCatalogUnavailable    Code = "catalog_unavailable"
	CodeGenerationParseFailed Code = "generation_parse_failed"
	CodeGenerationFailed      Code = "generation_failed"
	CodeInvalidRequest        Code = "invalid_request"
)

// Error is the only error type Generate returns.
type Error struct {
	Code    Code
	Stage   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s (%s)", e.Message, e.Code)
	if e.Stage != "" {
		msg = e.Stage + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

func newError(code Code, stage, message string, cause error) *Error {
	return &Error{Code: code, Stage: stage, Message: message, Cause: cause}
}

// CodeOf returns the pipeline code carried by err, or "" when there is none.
func CodeOf(err error) Code {
	var pe *Error
	if errors.As(err, &pe) && pe != nil {
		return pe.Code
	}
	return ""
}

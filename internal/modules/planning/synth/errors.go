package synth

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest means the request could not be rendered into a prompt.
var ErrInvalidRequest = errors.New("invalid synthesis request")

// ParseError means the model answered with data that is not a valid plan.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("plan parse failed: %s: %v", e.Reason, e.Err)
	}
	return "plan parse failed: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }

// GenerationError means the model could not be reached or declined to answer.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("plan generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// malformedOutput is implemented by generator errors that carry an unparseable answer.
type malformedOutput interface {
	MalformedOutput() bool
}

func classifyGeneratorError(err error) error {
	var m malformedOutput
	if errors.As(err, &m) && m.MalformedOutput() {
		return &ParseError{Reason: "model output is not JSON", Err: err}
	}
	return &GenerationError{Err: err}
}

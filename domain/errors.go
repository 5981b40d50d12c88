package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type ErrorKind string

const (
	ParseErrorKind        ErrorKind = "parse"
	DispatchErrorKind     ErrorKind = "dispatch"
	TimeoutErrorKind      ErrorKind = "timeout"
	JobFailedErrorKind    ErrorKind = "job_failed"
	PreconditionErrorKind ErrorKind = "precondition"
	TransientErrorKind    ErrorKind = "transient"
	CancelledErrorKind    ErrorKind = "cancelled"
	UnknownErrorKind      ErrorKind = "unknown"
)

// ParseError means the planner produced text that no degradation level of
// the strategy parser could turn into a complete Strategy. Raw keeps the
// unmodified planner output for diagnostics.
type ParseError struct {
	Raw    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("strategy output unusable: %s", e.Reason)
}

// DispatchError means the planner answered without invoking the capability
// it was asked to invoke.
type DispatchError struct {
	Reason string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("planner dispatch failed: %s", e.Reason)
}

type TimeoutError struct {
	JobID   string
	Elapsed time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("job %s did not finish within deadline, waited %s", e.JobID, e.Elapsed)
}

type JobFailedError struct {
	JobID  string
	Reason string
}

func (e *JobFailedError) Error() string {
	return fmt.Sprintf("job %s failed: %s", e.JobID, e.Reason)
}

// PreconditionError means a stage was about to run without a required
// upstream artifact. Correct orchestration never produces it.
type PreconditionError struct {
	Stage   StageName
	Missing string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("stage %s invoked without %s", e.Stage, e.Missing)
}

type TransientServiceError struct {
	Op  string
	Err error
}

func (e *TransientServiceError) Error() string {
	return fmt.Sprintf("transient fault during %s: %v", e.Op, e.Err)
}

func (e *TransientServiceError) Unwrap() error {
	return e.Err
}

// PipelineError is the terminal failure handed to the caller. It names the
// stage the pipeline died in and the kind of the underlying error.
type PipelineError struct {
	Stage StageName
	Kind  ErrorKind
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("pipeline failed at stage %s (%s): %v", e.Stage, e.Kind, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func IsTransient(err error) bool {
	var transient *TransientServiceError
	return errors.As(err, &transient)
}

func KindOf(err error) ErrorKind {
	var (
		parseErr        *ParseError
		dispatchErr     *DispatchError
		timeoutErr      *TimeoutError
		jobFailedErr    *JobFailedError
		preconditionErr *PreconditionError
	)
	switch {
	case errors.As(err, &parseErr):
		return ParseErrorKind
	case errors.As(err, &dispatchErr):
		return DispatchErrorKind
	case errors.As(err, &timeoutErr):
		return TimeoutErrorKind
	case errors.As(err, &jobFailedErr):
		return JobFailedErrorKind
	case errors.As(err, &preconditionErr):
		return PreconditionErrorKind
	case IsTransient(err):
		return TransientErrorKind
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return CancelledErrorKind
	default:
		return UnknownErrorKind
	}
}

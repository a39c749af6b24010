package pipeline

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure by the stage concern that produced it.
type Kind string

const (
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindRetrieval      Kind = "retrieval"
	KindTranscode      Kind = "transcode"
	KindSubmission     Kind = "submission"
	KindProviderFailed Kind = "provider_failed"
	KindTimeout        Kind = "timeout"
	KindPersistence    Kind = "persistence"
)

// Error is the structured failure type returned by the pipeline. It carries
// the failure kind, the stage name it happened in, and the underlying cause.
type Error struct {
	Kind    Kind
	Stage   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors by kind, so callers can write
// errors.Is(err, &pipeline.Error{Kind: pipeline.KindTimeout}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Stage == "" || t.Stage == e.Stage)
}

func newError(kind Kind, stage, message string, cause error) *Error {
	return &Error{Kind: kind, Stage: stage, Message: message, Cause: cause}
}

// KindOf extracts the pipeline failure kind from an error chain, or "" when
// the error did not come from the pipeline.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

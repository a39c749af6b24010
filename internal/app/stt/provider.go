package stt

import "context"

// JobState is the provider-side status of an accepted transcription job.
type JobState string

const (
	StatePending   JobState = "pending"
	StateCompleted JobState = "completed"
	StateFailed    JobState = "failed"
)

// JobStatus is one answer to a status query. Text is set only when State is
// StateCompleted; Reason only when StateFailed.
type JobStatus struct {
	State  JobState
	Text   string
	Reason string
}

// Provider is an asynchronous speech-to-text service: audio goes in once,
// a job handle comes back, and the transcript is collected by polling.
type Provider interface {
	// Submit uploads the staged audio and returns the provider's job handle.
	// It is called at most once per run; a submission failure is terminal.
	Submit(ctx context.Context, audioPath string) (string, error)

	// GetStatus queries the state of a previously submitted job.
	GetStatus(ctx context.Context, jobID string) (JobStatus, error)
}

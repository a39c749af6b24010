package model

// RunState is the lifecycle position of a single transcription run.
type RunState string

const (
	RunRetrieving RunState = "retrieving"
	RunExtracting RunState = "extracting"
	RunSubmitting RunState = "submitting"
	RunPolling    RunState = "polling"
	RunCompleted  RunState = "completed"
	RunFailed     RunState = "failed"
)

// TranscriptionRun is the transient record of one pipeline invocation. It is
// never persisted; nothing about a run survives past the video's transcript
// field. Staged paths are exclusively owned by the run.
type TranscriptionRun struct {
	ID              string
	VideoID         string
	StagedVideoPath string
	StagedAudioPath string
	ProviderJobID   string
	State           RunState
	AttemptCount    int
}

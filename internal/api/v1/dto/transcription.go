package dto

import "lecturescribe/internal/app/model"

// TranscriptionResponse reports the outcome of a transcription run.
type TranscriptionResponse struct {
	RunID        string `json:"run_id"`
	VideoID      string `json:"video_id"`
	State        string `json:"state"`
	AttemptCount int    `json:"attempt_count"`
	Transcript   string `json:"transcript"`
}

// NewTranscriptionResponse maps a finished run to its API shape.
func NewTranscriptionResponse(run *model.TranscriptionRun, transcript string) TranscriptionResponse {
	return TranscriptionResponse{
		RunID:        run.ID,
		VideoID:      run.VideoID,
		State:        string(run.State),
		AttemptCount: run.AttemptCount,
		Transcript:   transcript,
	}
}

// TranscriptResponse returns a stored transcript.
type TranscriptResponse struct {
	VideoID    string `json:"video_id"`
	Transcript string `json:"transcript"`
}

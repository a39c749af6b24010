package model

import "time"

// Video is a lecture video owned by a course. The transcript field is nil
// until a transcription run completes successfully, and is overwritten (not
// appended) by later successful runs.
type Video struct {
	ID             string
	CourseID       string
	Title          string
	SourceLocation string
	Position       int
	Transcript     *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasTranscript reports whether a successful run has persisted text.
func (v *Video) HasTranscript() bool {
	return v.Transcript != nil && *v.Transcript != ""
}

// TranscriptSearchHit is one search result over persisted transcripts.
type TranscriptSearchHit struct {
	VideoID  string
	CourseID string
	Title    string
	Snippet  string
}

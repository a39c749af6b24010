package store

import (
	"context"
	"database/sql"
	"errors"

	"lecturescribe/internal/app/model"
)

// ErrVideoNotFound is returned when the referenced video does not exist.
var ErrVideoNotFound = errors.New("video not found")

// VideoStore is the persistence boundary for lecture videos. The pipeline
// only reads a video and writes its transcript; the remaining methods back
// the catalog API.
type VideoStore interface {
	Close() error

	CreateVideo(ctx context.Context, v *model.Video) error
	GetVideo(ctx context.Context, id string) (*model.Video, error)
	ListByCourse(ctx context.Context, courseID string) ([]model.Video, error)
	UpdatePosition(ctx context.Context, id string, position int) error

	// SetTranscript overwrites the video's transcript. Only the pipeline's
	// finalizer calls this, and only after the provider reported success.
	SetTranscript(ctx context.Context, id string, text string) error

	SearchTranscripts(ctx context.Context, query string, limit int) ([]model.TranscriptSearchHit, error)
}

// IsNotFound reports whether err means the video row is absent, regardless of
// which backend produced it.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrVideoNotFound) || errors.Is(err, sql.ErrNoRows)
}

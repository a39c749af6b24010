package services

import (
	"context"

	apierrors "lecturescribe/internal/api/errors"
	"lecturescribe/internal/api/v1/dto"
	"lecturescribe/internal/app/pipeline"
	"lecturescribe/internal/app/store"
)

// TranscriptionService runs the transcription pipeline for catalog videos.
type TranscriptionService interface {
	Transcribe(ctx context.Context, videoID string) (dto.TranscriptionResponse, error)
	GetTranscript(ctx context.Context, videoID string) (dto.TranscriptResponse, error)
}

type transcriptionService struct {
	coordinator *pipeline.Coordinator
	store       store.VideoStore
}

func NewTranscriptionService(coordinator *pipeline.Coordinator, videoStore store.VideoStore) TranscriptionService {
	return &transcriptionService{coordinator: coordinator, store: videoStore}
}

// Transcribe runs the pipeline to completion. The handler's request context
// bounds the whole run, so an impatient client aborts the pipeline and its
// staged files are still cleaned up.
func (s *transcriptionService) Transcribe(ctx context.Context, videoID string) (dto.TranscriptionResponse, error) {
	result, err := s.coordinator.Run(ctx, videoID)
	if err != nil {
		return dto.TranscriptionResponse{}, err
	}
	return dto.NewTranscriptionResponse(result.Run, result.Transcript), nil
}

func (s *transcriptionService) GetTranscript(ctx context.Context, videoID string) (dto.TranscriptResponse, error) {
	video, err := s.store.GetVideo(ctx, videoID)
	if err != nil {
		if store.IsNotFound(err) {
			return dto.TranscriptResponse{}, apierrors.NewNotFoundError("video")
		}
		return dto.TranscriptResponse{}, apierrors.NewInternalError(err.Error())
	}
	if !video.HasTranscript() {
		return dto.TranscriptResponse{}, apierrors.NewNotFoundError("transcript")
	}
	return dto.TranscriptResponse{VideoID: video.ID, Transcript: *video.Transcript}, nil
}

// Package services holds the application services behind the v1 handlers.
package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	apierrors "lecturescribe/internal/api/errors"
	"lecturescribe/internal/api/v1/dto"
	"lecturescribe/internal/app/model"
	"lecturescribe/internal/app/store"
)

// VideoService manages the lecture video catalog.
type VideoService interface {
	Create(ctx context.Context, req *dto.CreateVideoRequest) (dto.VideoResponse, error)
	Get(ctx context.Context, id string) (dto.VideoResponse, error)
	ListByCourse(ctx context.Context, courseID string) ([]dto.VideoResponse, error)
	UpdatePosition(ctx context.Context, id string, position int) error
	Search(ctx context.Context, query string, limit int) ([]dto.SearchHit, error)
}

type videoService struct {
	store store.VideoStore
}

func NewVideoService(videoStore store.VideoStore) VideoService {
	return &videoService{store: videoStore}
}

func (s *videoService) Create(ctx context.Context, req *dto.CreateVideoRequest) (dto.VideoResponse, error) {
	now := time.Now().UTC()
	video := &model.Video{
		ID:             uuid.NewString(),
		CourseID:       req.CourseID,
		Title:          req.Title,
		SourceLocation: req.SourceLocation,
		Position:       req.Position,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.CreateVideo(ctx, video); err != nil {
		return dto.VideoResponse{}, apierrors.NewInternalError(err.Error())
	}
	return dto.NewVideoResponse(video), nil
}

func (s *videoService) Get(ctx context.Context, id string) (dto.VideoResponse, error) {
	video, err := s.store.GetVideo(ctx, id)
	if err != nil {
		if store.IsNotFound(err) {
			return dto.VideoResponse{}, apierrors.NewNotFoundError("video")
		}
		return dto.VideoResponse{}, apierrors.NewInternalError(err.Error())
	}
	return dto.NewVideoResponse(video), nil
}

func (s *videoService) ListByCourse(ctx context.Context, courseID string) ([]dto.VideoResponse, error) {
	videos, err := s.store.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, apierrors.NewInternalError(err.Error())
	}
	return lo.Map(videos, func(v model.Video, _ int) dto.VideoResponse {
		return dto.NewVideoResponse(&v)
	}), nil
}

func (s *videoService) UpdatePosition(ctx context.Context, id string, position int) error {
	if err := s.store.UpdatePosition(ctx, id, position); err != nil {
		if store.IsNotFound(err) {
			return apierrors.NewNotFoundError("video")
		}
		return apierrors.NewInternalError(err.Error())
	}
	return nil
}

func (s *videoService) Search(ctx context.Context, query string, limit int) ([]dto.SearchHit, error) {
	hits, err := s.store.SearchTranscripts(ctx, query, limit)
	if err != nil {
		return nil, apierrors.NewInternalError(err.Error())
	}
	return lo.Map(hits, func(h model.TranscriptSearchHit, _ int) dto.SearchHit {
		return dto.SearchHit{VideoID: h.VideoID, CourseID: h.CourseID, Title: h.Title, Snippet: h.Snippet}
	}), nil
}

// Package dto defines the request and response shapes of the v1 API.
package dto

import (
	"net/url"
	"time"

	"lecturescribe/internal/api/errors"
	"lecturescribe/internal/app/model"
)

// CreateVideoRequest registers a lecture video in the catalog.
type CreateVideoRequest struct {
	CourseID       string `json:"course_id" binding:"required,min=1,max=128"`
	Title          string `json:"title" binding:"required,min=1,max=512"`
	SourceLocation string `json:"source_location" binding:"required,min=1,max=2048"`
	Position       int    `json:"position" binding:"gte=0"`
}

// Validate applies the domain rules struct tags cannot express.
func (r *CreateVideoRequest) Validate() error {
	u, err := url.Parse(r.SourceLocation)
	if err != nil {
		return errors.NewValidationError("validation failed", map[string]string{
			"source_location": "must be a valid URL",
		})
	}
	switch u.Scheme {
	case "http", "https", "s3":
		return nil
	default:
		return errors.NewValidationError("validation failed", map[string]string{
			"source_location": "scheme must be http, https, or s3",
		})
	}
}

// UpdatePositionRequest moves a video within its course ordering.
type UpdatePositionRequest struct {
	Position int `json:"position" binding:"gte=0"`
}

// VideoResponse is the catalog view of a video.
type VideoResponse struct {
	ID             string    `json:"id"`
	CourseID       string    `json:"course_id"`
	Title          string    `json:"title"`
	SourceLocation string    `json:"source_location"`
	Position       int       `json:"position"`
	HasTranscript  bool      `json:"has_transcript"`
	Transcript     string    `json:"transcript,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewVideoResponse maps a domain video to its API shape.
func NewVideoResponse(v *model.Video) VideoResponse {
	resp := VideoResponse{
		ID:             v.ID,
		CourseID:       v.CourseID,
		Title:          v.Title,
		SourceLocation: v.SourceLocation,
		Position:       v.Position,
		HasTranscript:  v.HasTranscript(),
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
	if v.Transcript != nil {
		resp.Transcript = *v.Transcript
	}
	return resp
}

// SearchQuery filters transcript search.
type SearchQuery struct {
	Q     string `form:"q" binding:"required,min=2"`
	Limit int    `form:"limit,default=20" binding:"gte=1,lte=100"`
}

// SearchHit is one transcript search result.
type SearchHit struct {
	VideoID  string `json:"video_id"`
	CourseID string `json:"course_id"`
	Title    string `json:"title"`
	Snippet  string `json:"snippet"`
}

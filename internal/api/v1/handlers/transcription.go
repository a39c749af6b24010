package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lecturescribe/internal/api/middleware"
	"lecturescribe/internal/api/v1/services"
)

// TranscriptionHandler serves the transcription endpoints.
type TranscriptionHandler struct {
	service services.TranscriptionService
}

func NewTranscriptionHandler(service services.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{service: service}
}

// Transcribe handles POST /api/v1/videos/:id/transcriptions
//
// @Summary Transcribe a lecture video
// @Description Runs the full pipeline: retrieve the source media, extract audio, submit it to the speech provider, poll for the result, and persist the transcript. The call blocks until the run finishes.
// @Tags transcriptions
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} dto.TranscriptionResponse
// @Failure 404 {object} errors.APIError "Video or source media not found"
// @Failure 409 {object} errors.APIError "A run for this video is already in progress"
// @Failure 502 {object} errors.APIError "A pipeline stage failed against an external system"
// @Failure 504 {object} errors.APIError "The provider produced no result within the poll budget"
// @Router /videos/{id}/transcriptions [post]
func (h *TranscriptionHandler) Transcribe(c *gin.Context) {
	resp, err := h.service.Transcribe(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTranscript handles GET /api/v1/videos/:id/transcript
//
// @Summary Get a video's persisted transcript
// @Tags transcriptions
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} dto.TranscriptResponse
// @Failure 404 {object} errors.APIError "Video or transcript not found"
// @Router /videos/{id}/transcript [get]
func (h *TranscriptionHandler) GetTranscript(c *gin.Context) {
	resp, err := h.service.GetTranscript(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

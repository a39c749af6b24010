// Package handlers wires the v1 HTTP endpoints to the application services.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lecturescribe/internal/api/middleware"
	"lecturescribe/internal/api/v1/dto"
	"lecturescribe/internal/api/v1/services"
)

// VideoHandler serves the lecture video catalog endpoints.
type VideoHandler struct {
	service services.VideoService
}

func NewVideoHandler(service services.VideoService) *VideoHandler {
	return &VideoHandler{service: service}
}

// Create handles POST /api/v1/videos
//
// @Summary Register a lecture video
// @Tags videos
// @Accept json
// @Produce json
// @Param video body dto.CreateVideoRequest true "Video registration data"
// @Success 201 {object} dto.VideoResponse
// @Failure 422 {object} errors.APIError "Validation error"
// @Router /videos [post]
func (h *VideoHandler) Create(c *gin.Context) {
	var req dto.CreateVideoRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Get handles GET /api/v1/videos/:id
//
// @Summary Get a lecture video
// @Tags videos
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} dto.VideoResponse
// @Failure 404 {object} errors.APIError "Video not found"
// @Router /videos/{id} [get]
func (h *VideoHandler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListByCourse handles GET /api/v1/courses/:id/videos
//
// @Summary List a course's videos in playback order
// @Tags videos
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {array} dto.VideoResponse
// @Router /courses/{id}/videos [get]
func (h *VideoHandler) ListByCourse(c *gin.Context) {
	resp, err := h.service.ListByCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdatePosition handles PATCH /api/v1/videos/:id/position
//
// @Summary Move a video within its course ordering
// @Tags videos
// @Accept json
// @Param id path string true "Video ID"
// @Param position body dto.UpdatePositionRequest true "New position"
// @Success 204
// @Failure 404 {object} errors.APIError "Video not found"
// @Router /videos/{id}/position [patch]
func (h *VideoHandler) UpdatePosition(c *gin.Context) {
	var req dto.UpdatePositionRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	if err := h.service.UpdatePosition(c.Request.Context(), c.Param("id"), req.Position); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Search handles GET /api/v1/transcripts/search
//
// @Summary Search persisted transcripts
// @Tags transcripts
// @Produce json
// @Param q query string true "Search text"
// @Param limit query int false "Maximum results" default(20)
// @Success 200 {array} dto.SearchHit
// @Router /transcripts/search [get]
func (h *VideoHandler) Search(c *gin.Context) {
	var query dto.SearchQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	resp, err := h.service.Search(c.Request.Context(), query.Q, query.Limit)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

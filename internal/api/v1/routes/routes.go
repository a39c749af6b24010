// Package routes registers the v1 API surface.
package routes

import (
	"github.com/gin-gonic/gin"

	"lecturescribe/internal/api/v1/handlers"
	"lecturescribe/internal/api/v1/services"
)

// ServiceContainer holds the services the handlers depend on.
type ServiceContainer struct {
	VideoService         services.VideoService
	TranscriptionService services.TranscriptionService
}

// RegisterRoutes mounts all v1 routes on the given group.
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	videoHandler := handlers.NewVideoHandler(container.VideoService)
	transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService)

	videos := router.Group("/videos")
	{
		videos.POST("", videoHandler.Create)
		videos.GET("/:id", videoHandler.Get)
		videos.PATCH("/:id/position", videoHandler.UpdatePosition)
		videos.POST("/:id/transcriptions", transcriptionHandler.Transcribe)
		videos.GET("/:id/transcript", transcriptionHandler.GetTranscript)
	}

	router.GET("/courses/:id/videos", videoHandler.ListByCourse)
	router.GET("/transcripts/search", videoHandler.Search)
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lecturescribe/internal/api/middleware"
	"lecturescribe/internal/api/v1/dto"
	"lecturescribe/internal/api/v1/routes"
	"lecturescribe/internal/api/v1/services"
	"lecturescribe/internal/app/model"
	"lecturescribe/internal/app/pipeline"
	"lecturescribe/internal/app/stt"
	"lecturescribe/internal/app/testutil"
)

type env struct {
	router   *gin.Engine
	store    *testutil.MockVideoStore
	provider *testutil.MockProvider
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	videoStore := testutil.NewMockVideoStore()
	provider := testutil.NewMockProvider()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	coordinator := pipeline.NewCoordinator(
		videoStore,
		testutil.NewMockRetriever(),
		testutil.NewMockExtractor(),
		provider,
		t.TempDir(),
		pipeline.Options{
			PollConfig: stt.PollConfig{Interval: time.Millisecond, MaxAttempts: 5},
			Logger:     logger,
		},
	)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))

	container := &routes.ServiceContainer{
		VideoService:         services.NewVideoService(videoStore),
		TranscriptionService: services.NewTranscriptionService(coordinator, videoStore),
	}
	routes.RegisterRoutes(router.Group("/api/v1"), container)

	return &env{router: router, store: videoStore, provider: provider}
}

func (e *env) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func seedVideo(e *env) {
	e.store.WithVideo(model.Video{
		ID:             "vid-1",
		CourseID:       "course-1",
		Title:          "Intro lecture",
		SourceLocation: "https://media.example.com/intro.mp4",
	})
}

func TestCreateVideo(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodPost, "/api/v1/videos", gin.H{
		"course_id":       "course-1",
		"title":           "Intro lecture",
		"source_location": "https://media.example.com/intro.mp4",
		"position":        1,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp dto.VideoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "course-1", resp.CourseID)
	assert.False(t, resp.HasTranscript)
}

func TestCreateVideo_ValidationErrors(t *testing.T) {
	e := newEnv(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing title", gin.H{"course_id": "c", "source_location": "https://x.test/v.mp4"}},
		{"bad source scheme", gin.H{"course_id": "c", "title": "t", "source_location": "ftp://x.test/v.mp4"}},
		{"missing source", gin.H{"course_id": "c", "title": "t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := e.do(t, http.MethodPost, "/api/v1/videos", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
		})
	}
}

func TestGetVideo_NotFound(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodGet, "/api/v1/videos/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp["kind"])
	assert.NotEmpty(t, resp["request_id"])
}

func TestTranscribe_Success(t *testing.T) {
	e := newEnv(t)
	seedVideo(e)
	e.provider.WithScript(
		stt.JobStatus{State: stt.StatePending},
		stt.JobStatus{State: stt.StateCompleted, Text: "hello world"},
	)

	rec := e.do(t, http.MethodPost, "/api/v1/videos/vid-1/transcriptions", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp dto.TranscriptionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "hello world", resp.Transcript)
	assert.Equal(t, string(model.RunCompleted), resp.State)
	assert.Equal(t, 2, resp.AttemptCount)
	assert.Equal(t, "hello world", e.store.Transcript("vid-1"))
}

func TestTranscribe_VideoNotFound(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodPost, "/api/v1/videos/missing/transcriptions", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTranscribe_ProviderFailureMapsToBadGateway(t *testing.T) {
	e := newEnv(t)
	seedVideo(e)
	e.provider.WithScript(stt.JobStatus{State: stt.StateFailed, Reason: "audio too noisy"})

	rec := e.do(t, http.MethodPost, "/api/v1/videos/vid-1/transcriptions", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "audio too noisy")
}

func TestTranscribe_TimeoutMapsToGatewayTimeout(t *testing.T) {
	e := newEnv(t)
	seedVideo(e)
	e.provider.WithScript(stt.JobStatus{State: stt.StatePending})

	rec := e.do(t, http.MethodPost, "/api/v1/videos/vid-1/transcriptions", nil)
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, 1, e.provider.SubmitCalls)
	assert.Equal(t, 5, e.provider.StatusCalls)
}

func TestGetTranscript(t *testing.T) {
	e := newEnv(t)
	transcript := "hello world"
	e.store.WithVideo(model.Video{ID: "vid-1", CourseID: "course-1", Title: "Intro", Transcript: &transcript})

	rec := e.do(t, http.MethodGet, "/api/v1/videos/vid-1/transcript", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hello world")
}

func TestGetTranscript_AbsentTranscript(t *testing.T) {
	e := newEnv(t)
	seedVideo(e)

	rec := e.do(t, http.MethodGet, "/api/v1/videos/vid-1/transcript", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchTranscripts(t *testing.T) {
	e := newEnv(t)
	transcript := "today we discuss eigenvalues"
	e.store.WithVideo(model.Video{ID: "vid-1", CourseID: "course-1", Title: "Linear algebra", Transcript: &transcript})

	rec := e.do(t, http.MethodGet, "/api/v1/transcripts/search?q=eigenvalues", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var hits []dto.SearchHit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hits))
	require.Len(t, hits, 1)
	assert.Equal(t, "vid-1", hits[0].VideoID)
}

func TestSearchTranscripts_MissingQuery(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodGet, "/api/v1/transcripts/search", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePosition(t *testing.T) {
	e := newEnv(t)
	seedVideo(e)

	rec := e.do(t, http.MethodPatch, "/api/v1/videos/vid-1/position", gin.H{"position": 4})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = e.do(t, http.MethodGet, "/api/v1/videos/vid-1", nil)
	var resp dto.VideoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Position)
}

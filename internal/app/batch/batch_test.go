package batch

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lecturescribe/internal/app/model"
	"lecturescribe/internal/app/pipeline"
	"lecturescribe/internal/app/stt"
	"lecturescribe/internal/app/testutil"
)

func newRunner(t *testing.T, videoStore *testutil.MockVideoStore, provider *testutil.MockProvider) *Runner {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	coordinator := pipeline.NewCoordinator(
		videoStore,
		testutil.NewMockRetriever(),
		testutil.NewMockExtractor(),
		provider,
		t.TempDir(),
		pipeline.Options{
			PollConfig: stt.PollConfig{Interval: time.Millisecond, MaxAttempts: 3},
			Logger:     logger,
		},
	)
	return NewRunner(videoStore, coordinator, logger, ProgressConfig{Enabled: false})
}

func TestTranscribeCourse(t *testing.T) {
	done := "already done"
	videoStore := testutil.NewMockVideoStore().
		WithVideo(model.Video{ID: "vid-1", CourseID: "c1", Title: "One", SourceLocation: "https://x.test/1.mp4", Position: 1}).
		WithVideo(model.Video{ID: "vid-2", CourseID: "c1", Title: "Two", SourceLocation: "https://x.test/2.mp4", Position: 2, Transcript: &done}).
		WithVideo(model.Video{ID: "vid-3", CourseID: "other", Title: "Elsewhere", SourceLocation: "https://x.test/3.mp4"})

	provider := testutil.NewMockProvider().WithScript(stt.JobStatus{State: stt.StateCompleted, Text: "lecture text"})

	summary, err := newRunner(t, videoStore, provider).TranscribeCourse(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Completed)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, "lecture text", videoStore.Transcript("vid-1"))
	assert.Equal(t, "already done", videoStore.Transcript("vid-2"))
}

func TestTranscribeCourse_FailureDoesNotStopTheRest(t *testing.T) {
	videoStore := testutil.NewMockVideoStore().
		WithVideo(model.Video{ID: "vid-1", CourseID: "c1", Title: "One", SourceLocation: "https://x.test/1.mp4", Position: 1}).
		WithVideo(model.Video{ID: "vid-2", CourseID: "c1", Title: "Two", SourceLocation: "https://x.test/2.mp4", Position: 2})

	// First run fails terminally, second completes.
	provider := testutil.NewMockProvider().WithScript(
		stt.JobStatus{State: stt.StateFailed, Reason: "audio too noisy"},
		stt.JobStatus{State: stt.StateCompleted, Text: "second lecture"},
	)

	summary, err := newRunner(t, videoStore, provider).TranscribeCourse(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Completed)
	require.Contains(t, summary.Failures, "vid-1")
	assert.Equal(t, pipeline.KindProviderFailed, pipeline.KindOf(summary.Failures["vid-1"]))
	assert.Equal(t, "second lecture", videoStore.Transcript("vid-2"))
}

func TestTranscribeCourse_EmptyCourse(t *testing.T) {
	videoStore := testutil.NewMockVideoStore()
	provider := testutil.NewMockProvider()

	_, err := newRunner(t, videoStore, provider).TranscribeCourse(context.Background(), "empty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no videos")
}

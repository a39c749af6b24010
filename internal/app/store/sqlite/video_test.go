package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lecturescribe/internal/app/model"
	"lecturescribe/internal/app/store"
)

func openTestStore(t *testing.T) *VideoStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestVideoStore_CreateAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	v := &model.Video{
		ID:             "v1",
		CourseID:       "c1",
		Title:          "Intro to Databases",
		SourceLocation: "https://host/a.mp4",
		Position:       1,
	}
	require.NoError(t, s.CreateVideo(ctx, v))

	got, err := s.GetVideo(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "c1", got.CourseID)
	assert.Equal(t, "https://host/a.mp4", got.SourceLocation)
	assert.Nil(t, got.Transcript)
	assert.False(t, got.HasTranscript())
}

func TestVideoStore_GetMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetVideo(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, store.IsNotFound(err))
}

func TestVideoStore_SetTranscript(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateVideo(ctx, &model.Video{
		ID: "v1", CourseID: "c1", SourceLocation: "https://host/a.mp4",
	}))

	require.NoError(t, s.SetTranscript(ctx, "v1", "hello world"))

	got, err := s.GetVideo(ctx, "v1")
	require.NoError(t, err)
	require.True(t, got.HasTranscript())
	assert.Equal(t, "hello world", *got.Transcript)

	// Subsequent successful runs overwrite, never append.
	require.NoError(t, s.SetTranscript(ctx, "v1", "second pass"))
	got, err = s.GetVideo(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "second pass", *got.Transcript)
}

func TestVideoStore_SetTranscriptMissingVideo(t *testing.T) {
	s := openTestStore(t)

	err := s.SetTranscript(context.Background(), "ghost", "text")
	require.Error(t, err)
	assert.True(t, store.IsNotFound(err))
}

func TestVideoStore_ListByCourseOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i, id := range []string{"v3", "v1", "v2"} {
		require.NoError(t, s.CreateVideo(ctx, &model.Video{
			ID:             id,
			CourseID:       "c1",
			SourceLocation: "https://host/" + id + ".mp4",
			Position:       3 - i,
		}))
	}
	require.NoError(t, s.CreateVideo(ctx, &model.Video{
		ID: "other", CourseID: "c2", SourceLocation: "https://host/x.mp4",
	}))

	videos, err := s.ListByCourse(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, videos, 3)
	assert.Equal(t, "v2", videos[0].ID)
	assert.Equal(t, "v1", videos[1].ID)
	assert.Equal(t, "v3", videos[2].ID)

	require.NoError(t, s.UpdatePosition(ctx, "v3", 0))
	videos, err = s.ListByCourse(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "v3", videos[0].ID)
}

func TestVideoStore_SearchTranscripts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateVideo(ctx, &model.Video{
		ID: "v1", CourseID: "c1", Title: "Lecture 1", SourceLocation: "https://host/a.mp4",
	}))
	require.NoError(t, s.CreateVideo(ctx, &model.Video{
		ID: "v2", CourseID: "c1", Title: "Lecture 2", SourceLocation: "https://host/b.mp4",
	}))
	require.NoError(t, s.SetTranscript(ctx, "v1", "today we cover b-trees and hash indexes"))

	hits, err := s.SearchTranscripts(ctx, "b-trees", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "v1", hits[0].VideoID)
	assert.Contains(t, hits[0].Snippet, "b-trees")

	// Videos without transcripts never match.
	hits, err = s.SearchTranscripts(ctx, "anything", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

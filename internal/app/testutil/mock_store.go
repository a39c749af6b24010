// Package testutil provides configurable in-memory doubles for the pipeline
// and API tests. Every mock tracks its calls so tests can assert on exact
// interaction counts.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"

	"lecturescribe/internal/app/model"
	"lecturescribe/internal/app/store"
)

// MockVideoStore is an in-memory store.VideoStore with error injection.
type MockVideoStore struct {
	mu     sync.Mutex
	videos map[string]*model.Video

	getErr           error
	setTranscriptErr error

	GetCalls           int
	SetTranscriptCalls int
}

func NewMockVideoStore() *MockVideoStore {
	return &MockVideoStore{videos: make(map[string]*model.Video)}
}

// WithVideo seeds a video row.
func (m *MockVideoStore) WithVideo(v model.Video) *MockVideoStore {
	m.videos[v.ID] = &v
	return m
}

// WithGetError makes GetVideo fail.
func (m *MockVideoStore) WithGetError(err error) *MockVideoStore {
	m.getErr = err
	return m
}

// WithSetTranscriptError makes SetTranscript fail.
func (m *MockVideoStore) WithSetTranscriptError(err error) *MockVideoStore {
	m.setTranscriptErr = err
	return m
}

func (m *MockVideoStore) Close() error { return nil }

func (m *MockVideoStore) CreateVideo(ctx context.Context, v *model.Video) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *v
	m.videos[v.ID] = &copied
	return nil
}

func (m *MockVideoStore) GetVideo(ctx context.Context, id string) (*model.Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls++
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.videos[id]
	if !ok {
		return nil, store.ErrVideoNotFound
	}
	copied := *v
	return &copied, nil
}

func (m *MockVideoStore) ListByCourse(ctx context.Context, courseID string) ([]model.Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Video
	for _, v := range m.videos {
		if v.CourseID == courseID {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (m *MockVideoStore) UpdatePosition(ctx context.Context, id string, position int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.videos[id]
	if !ok {
		return store.ErrVideoNotFound
	}
	v.Position = position
	return nil
}

func (m *MockVideoStore) SetTranscript(ctx context.Context, id string, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetTranscriptCalls++
	if m.setTranscriptErr != nil {
		return m.setTranscriptErr
	}
	v, ok := m.videos[id]
	if !ok {
		return store.ErrVideoNotFound
	}
	v.Transcript = &text
	return nil
}

func (m *MockVideoStore) SearchTranscripts(ctx context.Context, query string, limit int) ([]model.TranscriptSearchHit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.TranscriptSearchHit
	for _, v := range m.videos {
		if v.Transcript == nil {
			continue
		}
		if strings.Contains(strings.ToLower(*v.Transcript), strings.ToLower(query)) {
			out = append(out, model.TranscriptSearchHit{VideoID: v.ID, CourseID: v.CourseID, Title: v.Title, Snippet: *v.Transcript})
		}
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// Transcript returns the stored transcript for assertions, or "" when unset.
func (m *MockVideoStore) Transcript(id string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.videos[id]
	if !ok || v.Transcript == nil {
		return ""
	}
	return *v.Transcript
}

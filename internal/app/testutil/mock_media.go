package testutil

import (
	"context"
	"os"
	"path/filepath"
	"sync"
)

// MockRetriever stages a fixed payload into the destination directory, or
// fails with a configured error.
type MockRetriever struct {
	mu      sync.Mutex
	payload []byte
	err     error

	FetchCalls int
	LastSource string
	LastDir    string
}

func NewMockRetriever() *MockRetriever {
	return &MockRetriever{payload: []byte("fake video payload")}
}

func (m *MockRetriever) WithPayload(b []byte) *MockRetriever {
	m.payload = b
	return m
}

func (m *MockRetriever) WithError(err error) *MockRetriever {
	m.err = err
	return m
}

func (m *MockRetriever) Fetch(ctx context.Context, source string, destDir string) (string, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchCalls++
	m.LastSource = source
	m.LastDir = destDir

	if m.err != nil {
		return "", 0, m.err
	}
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	destPath := filepath.Join(destDir, "source.mp4")
	if err := os.WriteFile(destPath, m.payload, 0o644); err != nil {
		return "", 0, err
	}
	return destPath, int64(len(m.payload)), nil
}

// MockExtractor writes a fake audio file next to the staged video, or fails
// with a configured error.
type MockExtractor struct {
	mu  sync.Mutex
	err error

	ExtractCalls int
	LastInput    string
}

func NewMockExtractor() *MockExtractor {
	return &MockExtractor{}
}

func (m *MockExtractor) WithError(err error) *MockExtractor {
	m.err = err
	return m
}

func (m *MockExtractor) Extract(ctx context.Context, videoPath string, destDir string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ExtractCalls++
	m.LastInput = videoPath

	if m.err != nil {
		return "", m.err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	destPath := filepath.Join(destDir, "audio.mp3")
	if err := os.WriteFile(destPath, []byte("fake mp3 payload"), 0o644); err != nil {
		return "", err
	}
	return destPath, nil
}

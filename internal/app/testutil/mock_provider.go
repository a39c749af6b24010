package testutil

import (
	"context"
	"sync"

	"lecturescribe/internal/app/stt"
)

// MockProvider plays back a scripted sequence of job statuses. Submit and
// GetStatus calls are counted so tests can assert on exact interaction
// counts. When the script runs out the last entry repeats.
type MockProvider struct {
	mu        sync.Mutex
	jobID     string
	submitErr error
	script    []stt.JobStatus
	statusErr []error

	SubmitCalls   int
	StatusCalls   int
	SubmittedPath string
}

func NewMockProvider() *MockProvider {
	return &MockProvider{
		jobID:  "job-test",
		script: []stt.JobStatus{{State: stt.StateCompleted, Text: "mock transcript"}},
	}
}

// WithScript sets the status sequence returned by successive GetStatus calls.
func (m *MockProvider) WithScript(script ...stt.JobStatus) *MockProvider {
	m.script = script
	return m
}

// WithStatusErrors sets per-call transport errors; a nil entry means that
// call succeeds with the scripted status.
func (m *MockProvider) WithStatusErrors(errs ...error) *MockProvider {
	m.statusErr = errs
	return m
}

func (m *MockProvider) WithSubmitError(err error) *MockProvider {
	m.submitErr = err
	return m
}

func (m *MockProvider) WithJobID(id string) *MockProvider {
	m.jobID = id
	return m
}

func (m *MockProvider) Submit(ctx context.Context, audioPath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SubmitCalls++
	m.SubmittedPath = audioPath
	if m.submitErr != nil {
		return "", m.submitErr
	}
	return m.jobID, nil
}

func (m *MockProvider) GetStatus(ctx context.Context, jobID string) (stt.JobStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.StatusCalls
	m.StatusCalls++

	if i < len(m.statusErr) && m.statusErr[i] != nil {
		return stt.JobStatus{}, m.statusErr[i]
	}
	if len(m.script) == 0 {
		return stt.JobStatus{State: stt.StatePending}, nil
	}
	if i >= len(m.script) {
		i = len(m.script) - 1
	}
	return m.script[i], nil
}

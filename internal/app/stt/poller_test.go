package stt

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedProvider replays a fixed sequence of status answers; queries past
// the end of the script repeat the final entry.
type scriptedProvider struct {
	mu       sync.Mutex
	script   []JobStatus
	errs     []error
	queries  int
	submits  int
	submitID string
}

func (p *scriptedProvider) Submit(ctx context.Context, audioPath string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.submits++
	if p.submitID == "" {
		p.submitID = "J1"
	}
	return p.submitID, nil
}

func (p *scriptedProvider) GetStatus(ctx context.Context, jobID string) (JobStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	i := p.queries
	p.queries++
	if i >= len(p.script) {
		i = len(p.script) - 1
	}
	var err error
	if i < len(p.errs) {
		err = p.errs[i]
	}
	return p.script[i], err
}

func (p *scriptedProvider) queryCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queries
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fastPoll(maxAttempts int) PollConfig {
	return PollConfig{Interval: time.Millisecond, MaxAttempts: maxAttempts}
}

func TestPoll_CompletesMidway(t *testing.T) {
	p := &scriptedProvider{script: []JobStatus{
		{State: StatePending},
		{State: StatePending},
		{State: StateCompleted, Text: "hello world"},
	}}

	text, err := Poll(context.Background(), p, "J1", fastPoll(20), testLogger())
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
	assert.Equal(t, 3, p.queryCount(), "terminal state must not be requeried")
}

func TestPoll_ExhaustsExactlyMaxAttempts(t *testing.T) {
	p := &scriptedProvider{script: []JobStatus{{State: StatePending}}}

	_, err := Poll(context.Background(), p, "J1", fastPoll(20), testLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPollTimeout)
	assert.Equal(t, 20, p.queryCount(), "poller must issue exactly the configured attempts")
}

func TestPoll_ProviderReportsFailure(t *testing.T) {
	p := &scriptedProvider{script: []JobStatus{
		{State: StatePending},
		{State: StateFailed, Reason: "audio unintelligible"},
	}}

	_, err := Poll(context.Background(), p, "J1", fastPoll(20), testLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrJobFailed)
	assert.Contains(t, err.Error(), "audio unintelligible")
	assert.Equal(t, 2, p.queryCount())
}

func TestPoll_TransportErrorConsumesAttempt(t *testing.T) {
	p := &scriptedProvider{
		script: []JobStatus{
			{},
			{State: StateCompleted, Text: "recovered"},
		},
		errs: []error{errors.New("connection reset")},
	}

	text, err := Poll(context.Background(), p, "J1", fastPoll(20), testLogger())
	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
	assert.Equal(t, 2, p.queryCount())
}

func TestPoll_TransportErrorsUntilBudgetExhausted(t *testing.T) {
	errs := make([]error, 5)
	script := make([]JobStatus, 5)
	for i := range errs {
		errs[i] = errors.New("unreachable")
	}
	p := &scriptedProvider{script: script, errs: errs}

	_, err := Poll(context.Background(), p, "J1", fastPoll(5), testLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPollTimeout)
	assert.Equal(t, 5, p.queryCount())
}

func TestPoll_ContextCancelledBetweenAttempts(t *testing.T) {
	p := &scriptedProvider{script: []JobStatus{{State: StatePending}}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Poll(ctx, p, "J1", PollConfig{Interval: time.Minute, MaxAttempts: 20}, testLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.LessOrEqual(t, p.queryCount(), 1)
}

func TestPoll_InvalidConfig(t *testing.T) {
	p := &scriptedProvider{script: []JobStatus{{State: StatePending}}}
	_, err := Poll(context.Background(), p, "J1", PollConfig{Interval: time.Millisecond}, testLogger())
	require.Error(t, err)
	assert.Zero(t, p.queryCount())
}

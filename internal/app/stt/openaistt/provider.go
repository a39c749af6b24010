// Package openaistt adapts the OpenAI Whisper API to the asynchronous job
// model used by the rest of the transcription pipeline. Whisper transcribes
// in a single synchronous call, so Submit starts the call in a background
// goroutine and GetStatus reads the result from an in-process job table.
package openaistt

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"

	"lecturescribe/internal/app/stt"
)

// Config holds the Whisper connection settings. BaseURL overrides the API
// endpoint for self-hosted OpenAI-compatible servers.
type Config struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

type job struct {
	done   bool
	text   string
	reason string
}

// Provider implements stt.Provider on top of the synchronous Whisper API.
type Provider struct {
	client  *openai.Client
	model   string
	timeout time.Duration

	mu   sync.Mutex
	jobs map[string]*job
}

func NewProvider(config Config) *Provider {
	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	if config.Model == "" {
		config.Model = openai.Whisper1
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Minute
	}
	return &Provider{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   config.Model,
		timeout: config.Timeout,
		jobs:    make(map[string]*job),
	}
}

// Submit registers a job and starts the transcription call in the
// background. The returned job ID is only meaningful to this process.
func (p *Provider) Submit(ctx context.Context, audioPath string) (string, error) {
	jobID := uuid.NewString()

	p.mu.Lock()
	p.jobs[jobID] = &job{}
	p.mu.Unlock()

	go p.run(jobID, audioPath)

	return jobID, nil
}

func (p *Provider) run(jobID, audioPath string) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	resp, err := p.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    p.model,
		FilePath: audioPath,
	})

	p.mu.Lock()
	defer p.mu.Unlock()
	j := p.jobs[jobID]
	if j == nil {
		return
	}
	j.done = true
	if err != nil {
		j.reason = err.Error()
		return
	}
	j.text = resp.Text
}

// GetStatus reports the state of a job started by Submit.
func (p *Provider) GetStatus(ctx context.Context, jobID string) (stt.JobStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	j, ok := p.jobs[jobID]
	if !ok {
		return stt.JobStatus{}, fmt.Errorf("unknown transcription job %s", jobID)
	}
	if !j.done {
		return stt.JobStatus{State: stt.StatePending}, nil
	}
	if j.reason != "" {
		return stt.JobStatus{State: stt.StateFailed, Reason: j.reason}, nil
	}
	return stt.JobStatus{State: stt.StateCompleted, Text: j.text}, nil
}

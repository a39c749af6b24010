// Package pipeline runs the transcription flow for one lecture video:
// retrieve the source media into a run-private staging directory, extract
// the audio track, submit it to the speech provider, poll for the result,
// and persist the transcript. Staged files never outlive the run.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"lecturescribe/internal/app/audio"
	"lecturescribe/internal/app/media"
	"lecturescribe/internal/app/metrics"
	"lecturescribe/internal/app/model"
	"lecturescribe/internal/app/store"
	"lecturescribe/internal/app/stt"
)

// StageTimeouts bounds the non-polling stages. The polling stage is bounded
// by its attempt budget instead of a wall-clock timeout.
type StageTimeouts struct {
	Retrieve time.Duration
	Extract  time.Duration
	Submit   time.Duration
}

// DefaultStageTimeouts returns the production defaults.
func DefaultStageTimeouts() StageTimeouts {
	return StageTimeouts{
		Retrieve: 10 * time.Minute,
		Extract:  10 * time.Minute,
		Submit:   2 * time.Minute,
	}
}

// Result is what a successful run produces. On a persistence failure the
// transcript is still populated so the caller can surface it to an operator.
type Result struct {
	Run        *model.TranscriptionRun
	Transcript string
}

// Coordinator executes transcription runs. It is safe for concurrent use;
// runs for distinct videos proceed in parallel while a second run for the
// same video is rejected with a conflict error.
type Coordinator struct {
	store       store.VideoStore
	retriever   media.Retriever
	extractor   audio.Extractor
	provider    stt.Provider
	pollConfig  stt.PollConfig
	stagingRoot string
	timeouts    StageTimeouts
	logger      *slog.Logger
	metrics     *metrics.Pipeline

	mu     sync.Mutex
	active map[string]struct{}
}

// Options carries the optional knobs for NewCoordinator.
type Options struct {
	PollConfig stt.PollConfig
	Timeouts   StageTimeouts
	Logger     *slog.Logger
	Metrics    *metrics.Pipeline
}

func NewCoordinator(videoStore store.VideoStore, retriever media.Retriever, extractor audio.Extractor, provider stt.Provider, stagingRoot string, opts Options) *Coordinator {
	if opts.PollConfig.MaxAttempts == 0 {
		opts.PollConfig = stt.DefaultPollConfig()
	}
	if opts.Timeouts == (StageTimeouts{}) {
		opts.Timeouts = DefaultStageTimeouts()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Coordinator{
		store:       videoStore,
		retriever:   retriever,
		extractor:   extractor,
		provider:    provider,
		pollConfig:  opts.PollConfig,
		stagingRoot: stagingRoot,
		timeouts:    opts.Timeouts,
		logger:      opts.Logger,
		metrics:     opts.Metrics,
	}
}

// Run transcribes the given video end to end. It returns a structured
// *Error whose Kind tells the caller which stage failed. When persistence
// is the failing stage the returned Result still carries the transcript.
func (c *Coordinator) Run(ctx context.Context, videoID string) (*Result, error) {
	if !c.acquire(videoID) {
		return nil, newError(KindConflict, "coordinator", fmt.Sprintf("transcription already running for video %s", videoID), nil)
	}
	defer c.release(videoID)

	c.metrics.RunStarted()
	outcome := "completed"
	defer func() { c.metrics.RunFinished(outcome) }()

	video, err := c.store.GetVideo(ctx, videoID)
	if err != nil {
		if store.IsNotFound(err) {
			outcome = string(KindNotFound)
			return nil, newError(KindNotFound, "coordinator", fmt.Sprintf("video %s", videoID), err)
		}
		outcome = string(KindPersistence)
		return nil, newError(KindPersistence, "coordinator", "load video", err)
	}

	run := &model.TranscriptionRun{
		ID:      uuid.NewString(),
		VideoID: videoID,
	}
	logger := c.logger.With("run_id", run.ID, "video_id", videoID)

	stagingDir := filepath.Join(c.stagingRoot, run.ID)
	if err := os.MkdirAll(stagingDir, 0o755); err != nil {
		outcome = string(KindRetrieval)
		return nil, newError(KindRetrieval, "staging", "create staging directory", err)
	}
	defer func() {
		if err := os.RemoveAll(stagingDir); err != nil {
			logger.Error("staging cleanup failed", "dir", stagingDir, "error", err)
			return
		}
		logger.Debug("staging directory removed", "dir", stagingDir)
	}()

	result, err := c.execute(ctx, logger, run, video, stagingDir)
	if err != nil {
		var pe *Error
		if errors.As(err, &pe) {
			outcome = string(pe.Kind)
		} else {
			outcome = "error"
		}
		logger.Error("transcription run failed", "state", run.State, "error", err)
		return result, err
	}

	logger.Info("transcription run completed", "attempts", run.AttemptCount, "transcript_chars", len(result.Transcript))
	return result, nil
}

func (c *Coordinator) execute(ctx context.Context, logger *slog.Logger, run *model.TranscriptionRun, video *model.Video, stagingDir string) (*Result, error) {
	run.State = model.RunRetrieving
	logger.Info("retrieving source media", "source", video.SourceLocation)
	videoPath, size, err := c.runRetrieve(ctx, video.SourceLocation, stagingDir)
	if err != nil {
		run.State = model.RunFailed
		return nil, classifyRetrieval(err)
	}
	run.StagedVideoPath = videoPath
	logger.Info("source media staged", "path", videoPath, "bytes", size)

	run.State = model.RunExtracting
	audioPath, err := c.runExtract(ctx, videoPath, stagingDir)
	if err != nil {
		run.State = model.RunFailed
		return nil, newError(KindTranscode, "extract", "extract audio track", err)
	}
	run.StagedAudioPath = audioPath
	if secs, derr := audio.Duration(ctx, audioPath); derr == nil {
		logger.Info("audio track extracted", "path", audioPath, "duration_s", secs)
	} else {
		logger.Info("audio track extracted", "path", audioPath)
	}

	run.State = model.RunSubmitting
	jobID, err := c.runSubmit(ctx, audioPath)
	if err != nil {
		run.State = model.RunFailed
		return nil, newError(KindSubmission, "submit", "submit audio to provider", err)
	}
	run.ProviderJobID = jobID
	logger.Info("transcription job submitted", "job_id", jobID)

	run.State = model.RunPolling
	counting := &countingProvider{Provider: c.provider}
	text, err := stt.Poll(ctx, counting, jobID, c.pollConfig, logger)
	run.AttemptCount = counting.queries
	c.metrics.ObservePollAttempts(counting.queries)
	if err != nil {
		run.State = model.RunFailed
		switch {
		case errors.Is(err, stt.ErrJobFailed):
			return nil, newError(KindProviderFailed, "poll", "provider rejected the job", err)
		case errors.Is(err, stt.ErrPollTimeout):
			return nil, newError(KindTimeout, "poll", "no result within the attempt budget", err)
		default:
			return nil, newError(KindSubmission, "poll", "status polling aborted", err)
		}
	}

	result := &Result{Run: run, Transcript: text}
	if err := c.store.SetTranscript(ctx, video.ID, text); err != nil {
		run.State = model.RunFailed
		return result, newError(KindPersistence, "finalize", "persist transcript", err)
	}
	run.State = model.RunCompleted

	return result, nil
}

func (c *Coordinator) runRetrieve(ctx context.Context, source, stagingDir string) (string, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Retrieve)
	defer cancel()

	start := time.Now()
	path, size, err := c.retriever.Fetch(ctx, source, stagingDir)
	c.metrics.ObserveStage("retrieve", time.Since(start))
	return path, size, err
}

func (c *Coordinator) runExtract(ctx context.Context, videoPath, stagingDir string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Extract)
	defer cancel()

	start := time.Now()
	path, err := c.extractor.Extract(ctx, videoPath, stagingDir)
	c.metrics.ObserveStage("extract", time.Since(start))
	return path, err
}

func (c *Coordinator) runSubmit(ctx context.Context, audioPath string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Submit)
	defer cancel()

	start := time.Now()
	jobID, err := c.provider.Submit(ctx, audioPath)
	c.metrics.ObserveStage("submit", time.Since(start))
	return jobID, err
}

func classifyRetrieval(err error) *Error {
	if errors.Is(err, media.ErrSourceNotFound) {
		return newError(KindNotFound, "retrieve", "source media missing", err)
	}
	return newError(KindRetrieval, "retrieve", "fetch source media", err)
}

func (c *Coordinator) acquire(videoID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		c.active = make(map[string]struct{})
	}
	if _, busy := c.active[videoID]; busy {
		return false
	}
	c.active[videoID] = struct{}{}
	return true
}

func (c *Coordinator) release(videoID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.active, videoID)
}

// countingProvider counts status queries so the run record and metrics can
// report how many attempts the poll loop actually used.
type countingProvider struct {
	stt.Provider
	queries int
}

func (p *countingProvider) GetStatus(ctx context.Context, jobID string) (stt.JobStatus, error) {
	p.queries++
	return p.Provider.GetStatus(ctx, jobID)
}

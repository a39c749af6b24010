package stt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrJobFailed reports that the provider explicitly marked the job failed
// after accepting it.
var ErrJobFailed = errors.New("provider reported transcription failure")

// ErrPollTimeout reports that the job was still pending after the configured
// maximum number of status queries.
var ErrPollTimeout = errors.New("transcription still pending after maximum poll attempts")

// PollConfig bounds the status-query loop.
type PollConfig struct {
	Interval    time.Duration
	MaxAttempts int
}

// DefaultPollConfig matches the service defaults: 20 attempts, 5 seconds apart.
func DefaultPollConfig() PollConfig {
	return PollConfig{Interval: 5 * time.Second, MaxAttempts: 20}
}

// Poll queries the job's status until the provider reports completion or
// failure, or the attempt budget runs out. Each iteration stands alone: the
// loop carries no response state between attempts, and a terminal answer is
// never requeried. A transport error on a single query consumes that attempt
// and polling continues.
func Poll(ctx context.Context, provider Provider, jobID string, cfg PollConfig, logger *slog.Logger) (string, error) {
	if cfg.MaxAttempts <= 0 {
		return "", fmt.Errorf("poll attempts must be positive, got %d", cfg.MaxAttempts)
	}

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		status, err := provider.GetStatus(ctx, jobID)
		if err != nil {
			if ctx.Err() != nil {
				return "", fmt.Errorf("polling aborted: %w", ctx.Err())
			}
			logger.Warn("status query failed, will retry",
				"job_id", jobID,
				"attempt", attempt,
				"max_attempts", cfg.MaxAttempts,
				"error", err,
			)
		} else {
			switch status.State {
			case StateCompleted:
				return status.Text, nil
			case StateFailed:
				if status.Reason != "" {
					return "", fmt.Errorf("%w: %s", ErrJobFailed, status.Reason)
				}
				return "", ErrJobFailed
			}
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("polling aborted: %w", ctx.Err())
		case <-time.After(cfg.Interval):
		}
	}

	return "", fmt.Errorf("%w (job %s, %d attempts)", ErrPollTimeout, jobID, cfg.MaxAttempts)
}

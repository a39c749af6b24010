// Package batch transcribes whole courses from the CLI, one video at a time,
// with terminal progress reporting.
package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"lecturescribe/internal/app/pipeline"
	"lecturescribe/internal/app/store"
)

// ProgressConfig controls the terminal progress bar.
type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

// Summary reports the outcome of a course run.
type Summary struct {
	Total     int
	Completed int
	Skipped   int
	Failed    int
	Failures  map[string]error
}

// Runner transcribes every video of a course sequentially. Sequential order
// keeps provider load predictable and matches course playback order.
type Runner struct {
	store       store.VideoStore
	coordinator *pipeline.Coordinator
	logger      *slog.Logger
	progress    ProgressConfig
}

func NewRunner(videoStore store.VideoStore, coordinator *pipeline.Coordinator, logger *slog.Logger, progress ProgressConfig) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		store:       videoStore,
		coordinator: coordinator,
		logger:      logger,
		progress:    progress,
	}
}

// TranscribeCourse runs the pipeline for each video of the course. Videos
// that already carry a transcript are skipped. A failing video does not stop
// the rest of the course; its error lands in the summary.
func (r *Runner) TranscribeCourse(ctx context.Context, courseID string) (*Summary, error) {
	videos, err := r.store.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("list course %s: %w", courseID, err)
	}
	if len(videos) == 0 {
		return nil, fmt.Errorf("course %s has no videos", courseID)
	}

	summary := &Summary{Total: len(videos), Failures: make(map[string]error)}
	bar := r.newBar(len(videos), courseID)

	for _, video := range videos {
		if video.HasTranscript() {
			summary.Skipped++
			bar.increment()
			continue
		}

		start := time.Now()
		_, err := r.coordinator.Run(ctx, video.ID)
		if err != nil {
			if ctx.Err() != nil {
				bar.abort()
				return summary, fmt.Errorf("course run aborted: %w", ctx.Err())
			}
			summary.Failed++
			summary.Failures[video.ID] = err
			r.logger.Error("video failed", "video_id", video.ID, "title", video.Title, "error", err)
		} else {
			summary.Completed++
			r.logger.Info("video transcribed", "video_id", video.ID, "title", video.Title, "took", time.Since(start))
		}
		bar.increment()
	}

	bar.wait()
	return summary, nil
}

type progressBar struct {
	container *mpb.Progress
	bar       *mpb.Bar
}

func (r *Runner) newBar(total int, courseID string) *progressBar {
	if !r.progress.Enabled {
		return &progressBar{}
	}

	writer := r.progress.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
	)
	bar := container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(fmt.Sprintf("course %s ", courseID)),
			decor.CountersNoUnit("%d / %d"),
		),
		mpb.AppendDecorators(decor.Percentage()),
	)
	return &progressBar{container: container, bar: bar}
}

func (p *progressBar) increment() {
	if p.bar != nil {
		p.bar.Increment()
	}
}

func (p *progressBar) abort() {
	if p.bar != nil {
		p.bar.Abort(true)
	}
}

func (p *progressBar) wait() {
	if p.container != nil {
		p.container.Wait()
	}
}

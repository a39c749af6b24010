package audio

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Extractor produces an audio-only file from a staged video.
type Extractor interface {
	Extract(ctx context.Context, videoPath string, destDir string) (string, error)
}

// FFmpegExtractor shells out to ffmpeg. A transcode failure is terminal for
// the run; there is no retry.
type FFmpegExtractor struct {
	// Binary overrides the ffmpeg executable name. Empty means "ffmpeg" on PATH.
	Binary string
}

func NewFFmpegExtractor() *FFmpegExtractor {
	return &FFmpegExtractor{}
}

func (e *FFmpegExtractor) binary() string {
	if e.Binary != "" {
		return e.Binary
	}
	return "ffmpeg"
}

// Extract strips the video track and encodes the audio as mp3 next to the
// staged video. The output partial is removed if ffmpeg fails.
func (e *FFmpegExtractor) Extract(ctx context.Context, videoPath string, destDir string) (string, error) {
	if _, err := os.Stat(videoPath); err != nil {
		return "", fmt.Errorf("staged video missing: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	audioPath := filepath.Join(destDir, base+".mp3")

	cmd := exec.CommandContext(ctx, e.binary(), "-y", "-i", videoPath, "-vn", "-acodec", "libmp3lame", audioPath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.Remove(audioPath)
		if ctx.Err() != nil {
			return "", fmt.Errorf("ffmpeg aborted: %w", ctx.Err())
		}
		return "", fmt.Errorf("ffmpeg error: %v, stderr: %s", err, stderr.String())
	}

	return audioPath, nil
}

// Duration returns the rounded media duration in seconds using ffprobe.
func Duration(ctx context.Context, filePath string) (int, error) {
	cmd := exec.CommandContext(ctx, "ffprobe", "-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1", filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, err
	}
	durationFloat, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, err
	}
	return int(math.Round(durationFloat)), nil
}

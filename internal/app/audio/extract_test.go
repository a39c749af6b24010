package audio

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFFmpeg writes a shell script standing in for ffmpeg. exitCode controls
// the transcode outcome; on success the script materializes the output file
// (last argument) like the real binary would.
func fakeFFmpeg(t *testing.T, exitCode int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake ffmpeg script requires a POSIX shell")
	}

	script := "#!/bin/sh\n"
	if exitCode == 0 {
		script += `for out; do :; done
printf 'fake audio' > "$out"
`
	} else {
		script += "echo 'Invalid data found when processing input' >&2\n"
	}
	script += "exit " + map[int]string{0: "0", 1: "1"}[exitCode] + "\n"

	path := filepath.Join(t.TempDir(), "ffmpeg")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestExtract_Success(t *testing.T) {
	destDir := t.TempDir()
	videoPath := filepath.Join(destDir, "lecture.mp4")
	require.NoError(t, os.WriteFile(videoPath, []byte("fake video"), 0o644))

	e := &FFmpegExtractor{Binary: fakeFFmpeg(t, 0)}
	audioPath, err := e.Extract(context.Background(), videoPath, destDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(destDir, "lecture.mp3"), audioPath)
	_, err = os.Stat(audioPath)
	assert.NoError(t, err)
}

func TestExtract_TranscodeFailure(t *testing.T) {
	destDir := t.TempDir()
	videoPath := filepath.Join(destDir, "corrupt.mp4")
	require.NoError(t, os.WriteFile(videoPath, []byte("not a video"), 0o644))

	e := &FFmpegExtractor{Binary: fakeFFmpeg(t, 1)}
	_, err := e.Extract(context.Background(), videoPath, destDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ffmpeg error")
	assert.Contains(t, err.Error(), "Invalid data")

	// The never-completed audio file must not linger.
	_, statErr := os.Stat(filepath.Join(destDir, "corrupt.mp3"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExtract_MissingInput(t *testing.T) {
	e := NewFFmpegExtractor()
	_, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "nope.mp4"), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "staged video missing")
}

func TestExtract_CancelledContext(t *testing.T) {
	destDir := t.TempDir()
	videoPath := filepath.Join(destDir, "lecture.mp4")
	require.NoError(t, os.WriteFile(videoPath, []byte("fake video"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := &FFmpegExtractor{Binary: fakeFFmpeg(t, 0)}
	_, err := e.Extract(ctx, videoPath, destDir)
	require.Error(t, err)
}

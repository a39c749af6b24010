package transcribe

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lecturescribe/internal/app"
	"lecturescribe/internal/app/batch"
	"lecturescribe/internal/config"
)

var courseID string
var noProgress bool

func init() {
	Cmd.Flags().StringVarP(&courseID, "course", "c", "", "course whose videos should be transcribed")
	Cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the terminal progress bar")

	Cmd.MarkFlagRequired("course")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Transcribe every video of a course",
	Long: `Transcribe every video of a course.

- Videos are processed sequentially in playback order
- Videos that already have a transcript are skipped
- A failed video is reported and the rest of the course continues`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.RequireSpeechService(); err != nil {
			return err
		}

		runner, cleanup, err := app.InitializeRunner(cfg, batch.ProgressConfig{
			Enabled: !noProgress,
			Writer:  os.Stderr,
		})
		if err != nil {
			return err
		}
		defer cleanup()

		summary, err := runner.TranscribeCourse(cmd.Context(), courseID)
		if err != nil {
			return err
		}

		fmt.Printf("course %s: %d videos, %d transcribed, %d skipped, %d failed\n",
			courseID, summary.Total, summary.Completed, summary.Skipped, summary.Failed)
		for videoID, failure := range summary.Failures {
			fmt.Fprintf(os.Stderr, "  %s: %v\n", videoID, failure)
		}
		if summary.Failed > 0 {
			return fmt.Errorf("%d of %d videos failed", summary.Failed, summary.Total)
		}
		return nil
	},
}

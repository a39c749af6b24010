package export

import (
	"fmt"

	"github.com/spf13/cobra"

	appexport "lecturescribe/internal/app/export"
	"lecturescribe/internal/app/store"
	"lecturescribe/internal/app/store/pg"
	"lecturescribe/internal/app/store/sqlite"
	"lecturescribe/internal/config"
)

var courseID string
var outputFilePath string

func init() {
	Cmd.Flags().StringVarP(&courseID, "course", "c", "", "course to export")
	Cmd.Flags().StringVarP(&outputFilePath, "output", "o", "", "path of the xlsx file to write")

	Cmd.MarkFlagRequired("course")
	Cmd.MarkFlagRequired("output")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export a course's transcripts to excel",
	Long: `Export a course's transcripts to excel.

Writes one row per video in playback order, including videos that have no
transcript yet.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var videoStore store.VideoStore
		if cfg.DBDriver == "postgres" {
			videoStore, err = pg.Open(cfg.DBDSN)
		} else {
			videoStore, err = sqlite.Open(cfg.DBPath)
		}
		if err != nil {
			return err
		}
		defer videoStore.Close()

		videos, err := videoStore.ListByCourse(cmd.Context(), courseID)
		if err != nil {
			return err
		}
		if len(videos) == 0 {
			return fmt.Errorf("course %s has no videos", courseID)
		}

		if err := appexport.ToExcel(videos, outputFilePath); err != nil {
			return err
		}
		fmt.Printf("exported %d videos to %s\n", len(videos), outputFilePath)
		return nil
	},
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"lecturescribe/cmd/lscribe/cmd/export"
	"lecturescribe/cmd/lscribe/cmd/serve"
	"lecturescribe/cmd/lscribe/cmd/transcribe"
	"lecturescribe/cmd/lscribe/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lscribe",
	Short: "Transcribe lecture videos into searchable text",
	Long: `lscribe turns lecture videos into text transcripts.

- serve runs the HTTP API
- transcribe runs the pipeline for a whole course from the terminal
- export writes a course's transcripts to a spreadsheet`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

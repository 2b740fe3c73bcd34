package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/syncedlyrics/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var batchCmd = &cobra.Command{
	Use:   "batch [flags] {file}",
	Short: "Fetch lyrics for every ISRC or query listed in a file.",
	Long: `Fetch lyrics for a list of tracks.

The file holds one entry per line. Entries that look like an ISRC are looked up directly,
anything else is used as a search query. Blank lines, duplicates and lines starting with # are ignored.

Each result is saved as "Artist - Title.lrc" when synced, or ".txt" otherwise.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		isSynced, _ := flags.GetBool("synced")
		outputDir, _ := flags.GetString("output-dir")
		isOverwrite, _ := flags.GetBool("overwrite")

		app.ExecuteBatchCommand(cmd.Context(), appConfig, &app.BatchRequest{
			InputPath: args[0],
			OutputDir: outputDir,
			Synced:    isSynced,
			Overwrite: isOverwrite,
		})
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	batchCmdFlags := batchCmd.Flags()

	batchCmdFlags.BoolP(
		"synced",
		"s",
		false,
		"prefer time-synced lyrics.")

	batchCmdFlags.StringP(
		"output-dir",
		"o",
		"",
		"directory to save lyrics files (the path will be created if it doesn’t exist).")

	batchCmdFlags.Bool(
		"overwrite",
		false,
		"replace lyrics files that already exist.")

	rootCmd.AddCommand(batchCmd)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/syncedlyrics/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var embedCmd = &cobra.Command{
	Use:   "embed [flags] {files or folders}",
	Short: "Write lyrics into the tags of FLAC and MP3 files.",
	Long: `Write lyrics into audio file tags.

Each file is identified by its ISRC tag, or by its artist and title tags when the ISRC is missing
or unknown to Musixmatch. Folders are searched recursively for FLAC and MP3 files.

FLAC files get a LYRICS comment. MP3 files get an unsynchronised lyrics frame,
plus a synchronised lyrics frame when timed lyrics were found.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, paths []string) {
		isSynced, _ := cmd.Flags().GetBool("synced")

		app.ExecuteEmbedCommand(cmd.Context(), appConfig, &app.EmbedRequest{
			Paths:  paths,
			Synced: isSynced,
		})
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	embedCmd.Flags().BoolP(
		"synced",
		"s",
		false,
		"prefer time-synced lyrics.")

	rootCmd.AddCommand(embedCmd)
}

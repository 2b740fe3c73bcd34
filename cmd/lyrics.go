package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/oshokin/syncedlyrics/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var lyricsCmd = &cobra.Command{
	Use:   "lyrics [flags] {query}",
	Short: "Fetch lyrics by ISRC or by a search query.",
	Long: `Fetch lyrics for one track.

The track is selected with --isrc or with a free-text query such as "queen bohemian rhapsody".
With --synced, word-level synced lyrics are tried first, then line-level ones,
and plain lyrics are returned when neither exists.

Examples:
  syncedlyrics lyrics --isrc GBUM71029604 --synced --format lrc
  syncedlyrics lyrics queen bohemian rhapsody -o lyrics.txt`,
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		isrc, _ := flags.GetString("isrc")
		isSynced, _ := flags.GetBool("synced")
		outputPath, _ := flags.GetString("output")

		if isrc == "" && len(args) == 0 {
			_ = cmd.Usage()

			return
		}

		app.ExecuteLyricsCommand(cmd.Context(), appConfig, &app.LyricsRequest{
			Query:      strings.Join(args, " "),
			ISRC:       isrc,
			Synced:     isSynced,
			OutputPath: outputPath,
		})
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	lyricsCmdFlags := lyricsCmd.Flags()

	lyricsCmdFlags.StringP(
		"isrc",
		"i",
		"",
		"International Standard Recording Code of the track, takes precedence over the query.")

	lyricsCmdFlags.BoolP(
		"synced",
		"s",
		false,
		"prefer time-synced lyrics.")

	lyricsCmdFlags.StringP(
		"output",
		"o",
		"",
		"file to save the lyrics to instead of printing them.")

	rootCmd.AddCommand(lyricsCmd)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/syncedlyrics/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var trackCmd = &cobra.Command{
	Use:   "track {isrc}",
	Short: "Show Musixmatch metadata of the track with the ISRC.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app.ExecuteTrackCommand(cmd.Context(), appConfig, args[0])
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(trackCmd)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/syncedlyrics/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	tokenCmd = &cobra.Command{
		Use:   "token",
		Short: "Session token management commands",
		Long: `Manage the Musixmatch session token.

A token is requested anonymously on the first lookup and cached in the user cache directory,
so later runs skip the request until it expires. These commands inspect or reset that cache.`,
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	tokenStatusCmd = &cobra.Command{
		Use:   "status",
		Short: "Show the cached session token",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteTokenStatusCommand(cmd.Context(), appConfig)
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	tokenRefreshCmd = &cobra.Command{
		Use:   "refresh",
		Short: "Discard the cached session token and request a new one",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteTokenRefreshCommand(cmd.Context(), appConfig)
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	tokenClearCmd = &cobra.Command{
		Use:   "clear",
		Short: "Remove the cached session token",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteTokenClearCommand(cmd.Context(), appConfig)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	tokenCmd.AddCommand(tokenStatusCmd, tokenRefreshCmd, tokenClearCmd)

	rootCmd.AddCommand(tokenCmd)
}

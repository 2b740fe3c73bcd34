// Command syncedlyrics fetches plain and time-synced lyrics from Musixmatch.
package main

import "github.com/oshokin/syncedlyrics/cmd"

// main is the entry point of the application.
// It calls the Execute function from the cmd package, which starts the CLI.
func main() {
	cmd.Execute()
}

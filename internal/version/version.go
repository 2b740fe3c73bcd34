// Package version exposes build information injected through -ldflags.
package version

var (
	// Version is the semantic version of the build.
	//nolint:gochecknoglobals // Overridden at link time.
	Version = "0.1.0"
	// Commit is the git commit the binary was built from.
	//nolint:gochecknoglobals // Overridden at link time.
	Commit = "none"
	// BuildTime is the moment the binary was built.
	//nolint:gochecknoglobals // Overridden at link time.
	BuildTime = "unknown"
)

// Short returns just the version number.
func Short() string {
	return Version
}

// Full returns version, commit and build time in one line.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}

// Package config loads, validates and saves the application settings.
// Values come from an optional YAML file, SYNCEDLYRICS_* environment variables and built-in defaults, in that order of precedence.
package config

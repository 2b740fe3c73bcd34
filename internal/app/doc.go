// Package app wires the configuration, the Musixmatch client and the services
// behind each command line command: single lookups, track metadata, token management,
// batch runs over a list of entries and lyrics embedding into audio files.
package app

// Package lyrics resolves a track by ISRC or free-text query and fetches its lyrics.
//
// Synced lookups try word-synchronized lyrics first, then line-synchronized
// lyrics, and finally plain lyrics. Every lookup yields a Result; only
// GetTrackByISRC reports failures as errors.
package lyrics

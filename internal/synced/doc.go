// Package synced turns Musixmatch time-synchronized lyric payloads into ordered timed lines.
//
// Two upstream formats are understood: subtitle bodies made of "[mm:ss.xx] text" lines
// and rich-sync JSON arrays carrying per-word fragments. Both parsers are total: malformed
// input yields an empty result instead of an error. Lines can be rendered back as LRC.
package synced

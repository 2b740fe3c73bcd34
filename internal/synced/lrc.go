package synced

import (
	"fmt"
	"strings"
)

// LRCHeader carries the optional ID tags written above the timed lines.
type LRCHeader struct {
	// Title is written as [ti:].
	Title string
	// Artist is written as [ar:].
	Artist string
	// Album is written as [al:].
	Album string
	// Duration in seconds, written as [length:] when positive.
	Duration int
}

// FormatLRC renders lines as an LRC document, one "[mm:ss.xx]text" line each.
// A nil header writes no ID tags.
func FormatLRC(lines []Line, header *LRCHeader) string {
	var b strings.Builder

	if header != nil {
		writeTag(&b, "ti", header.Title)
		writeTag(&b, "ar", header.Artist)
		writeTag(&b, "al", header.Album)

		if header.Duration > 0 {
			writeTag(&b, "length", fmt.Sprintf("%d:%02d", header.Duration/60, header.Duration%60))
		}
	}

	for _, line := range lines {
		b.WriteString("[")
		b.WriteString(line.Time.Timestamp())
		b.WriteString("]")
		b.WriteString(line.Text)
		b.WriteString("\n")
	}

	return b.String()
}

// PlainText returns the line texts separated by newlines.
func PlainText(lines []Line) string {
	texts := make([]string, len(lines))
	for i, line := range lines {
		texts[i] = line.Text
	}

	return strings.Join(texts, "\n")
}

func writeTag(b *strings.Builder, name, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}

	fmt.Fprintf(b, "[%s:%s]\n", name, value)
}

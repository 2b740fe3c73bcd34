package synced

import "fmt"

// Time is the start of a lyric line.
// Total equals Minutes*60 + Seconds + MS/1000 up to float rounding.
type Time struct {
	// Total is the offset from the start of the track in seconds.
	Total float64 `json:"total" yaml:"total"`
	// Minutes is the whole-minute part of the offset.
	Minutes int `json:"minutes" yaml:"minutes"`
	// Seconds is the whole-second part within the minute.
	Seconds int `json:"seconds" yaml:"seconds"`
	// MS is the millisecond part within the second.
	MS int `json:"ms" yaml:"ms"`
}

// Line is one lyric line with its start time.
type Line struct {
	// Text is the line content, never empty.
	Text string `json:"text" yaml:"text"`
	// Time is when the line starts.
	Time Time `json:"time" yaml:"time"`
}

// Timestamp renders the start time as an LRC tag body, "mm:ss.xx".
func (t Time) Timestamp() string {
	return fmt.Sprintf("%02d:%02d.%02d", t.Minutes, t.Seconds, t.MS/10) //nolint:mnd // Centiseconds.
}

// Milliseconds returns the start time in whole milliseconds.
func (t Time) Milliseconds() int64 {
	return int64(t.Minutes)*60_000 + int64(t.Seconds)*1000 + int64(t.MS)
}

package synced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTime_Timestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		time     Time
		expected string
	}{
		{name: "zero", time: Time{}, expected: "00:00.00"},
		{name: "centiseconds", time: Time{Minutes: 1, Seconds: 2, MS: 30}, expected: "01:02.03"},
		{name: "milliseconds are truncated", time: Time{Minutes: 0, Seconds: 9, MS: 999}, expected: "00:09.99"},
		{name: "long track", time: Time{Minutes: 123, Seconds: 4, MS: 500}, expected: "123:04.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.time.Timestamp())
		})
	}
}

func TestTime_Milliseconds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(75_250), Time{Minutes: 1, Seconds: 15, MS: 250}.Milliseconds())
}

func TestFormatLRC(t *testing.T) {
	t.Parallel()

	lines := []Line{
		{Text: "Intro", Time: Time{Total: 5, Seconds: 5}},
		{Text: "Hello world", Time: Time{Total: 12.5, Seconds: 12, MS: 500}},
	}

	assert.Equal(t, "[00:05.00]Intro\n[00:12.50]Hello world\n", FormatLRC(lines, nil))

	header := &LRCHeader{Title: "Song", Artist: "Band", Duration: 213}
	assert.Equal(t,
		"[ti:Song]\n[ar:Band]\n[length:3:33]\n[00:05.00]Intro\n[00:12.50]Hello world\n",
		FormatLRC(lines, header))
}

func TestFormatLRC_RoundTrip(t *testing.T) {
	t.Parallel()

	body := "[00:12.50] Hello\n[00:12.50] world\n[00:05.00] Intro"
	parsed := ParseSubtitle(body)

	assert.Equal(t, parsed, ParseSubtitle(FormatLRC(parsed, nil)))
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	lines := []Line{{Text: "one"}, {Text: "two"}}

	assert.Equal(t, "one\ntwo", PlainText(lines))
	assert.Empty(t, PlainText(nil))
}

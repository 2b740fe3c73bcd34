package synced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubtitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected []Line
	}{
		{
			name: "merges duplicate timestamps and sorts",
			body: "[00:12.50] Hello\n[00:12.50] world\n[00:05.00] Intro",
			expected: []Line{
				{Text: "Intro", Time: Time{Total: 5, Minutes: 0, Seconds: 5, MS: 0}},
				{Text: "Hello world", Time: Time{Total: 12.5, Minutes: 0, Seconds: 12, MS: 500}},
			},
		},
		{
			name: "skips blank and malformed lines",
			body: "\n   \n[ar: Someone]\n[1:02.03] too short\n[01:02.03]   Valid line  \r\nno timestamp at all",
			expected: []Line{
				{Text: "Valid line", Time: Time{Total: 62.03, Minutes: 1, Seconds: 2, MS: 30}},
			},
		},
		{
			name:     "timestamp without text is ignored",
			body:     "[00:01.00]\n[00:02.00]   ",
			expected: []Line{},
		},
		{
			name:     "empty body",
			body:     "",
			expected: []Line{},
		},
		{
			name: "keeps encounter order for equal keys across the body",
			body: "[00:03.00] c\n[00:01.00] a\n[00:03.00] d\n[00:01.00] b",
			expected: []Line{
				{Text: "a b", Time: Time{Total: 1, Seconds: 1}},
				{Text: "c d", Time: Time{Total: 3, Seconds: 3}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lines := ParseSubtitle(tt.body)
			require.Len(t, lines, len(tt.expected))

			for i, expected := range tt.expected {
				assert.Equal(t, expected.Text, lines[i].Text)
				assert.Equal(t, expected.Time.Minutes, lines[i].Time.Minutes)
				assert.Equal(t, expected.Time.Seconds, lines[i].Time.Seconds)
				assert.Equal(t, expected.Time.MS, lines[i].Time.MS)
				assert.InDelta(t, expected.Time.Total, lines[i].Time.Total, 1e-9)
			}
		})
	}
}

func TestParseSubtitle_Invariants(t *testing.T) {
	t.Parallel()

	body := "[02:59.99] last\n[00:00.01] first\n[01:30.50] middle\n[00:00.01] again\n[10:00.00] end"
	lines := ParseSubtitle(body)
	require.Len(t, lines, 4)

	for i, line := range lines {
		assert.NotEmpty(t, line.Text)

		reconstructed := float64(line.Time.Minutes*60+line.Time.Seconds) + float64(line.Time.MS)/1000
		assert.InDelta(t, line.Time.Total, reconstructed, 1e-9)

		if i > 0 {
			assert.LessOrEqual(t, lines[i-1].Time.Total, line.Time.Total)
		}
	}

	assert.Equal(t, "first again", lines[0].Text)
}

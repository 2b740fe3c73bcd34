package synced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRichSync(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected []Line
	}{
		{
			name: "merges items sharing a start time",
			body: `[{"ts":"1.0","l":[{"c":"Hi"}]},{"ts":"1.0","l":[{"c":"there"}]}]`,
			expected: []Line{
				{Text: "Hi there", Time: Time{Total: 1, Minutes: 0, Seconds: 1, MS: 0}},
			},
		},
		{
			name: "numeric timestamps and whitespace fragments",
			body: `[{"ts":75.25,"te":77,"l":[{"c":"Never","o":0},{"c":" ","o":0.3},{"c":"gonna","o":0.4}]},` +
				`{"ts":3.5,"l":[{"c":"Intro"}]}]`,
			expected: []Line{
				{Text: "Intro", Time: Time{Total: 3.5, Minutes: 0, Seconds: 3, MS: 500}},
				{Text: "Never gonna", Time: Time{Total: 75.25, Minutes: 1, Seconds: 15, MS: 250}},
			},
		},
		{
			name: "skips items without usable fields",
			body: `[{"l":[{"c":"no ts"}]},{"ts":"","l":[{"c":"empty ts"}]},{"ts":0,"l":[{"c":"zero ts"}]},` +
				`{"ts":"abc","l":[{"c":"bad ts"}]},{"ts":"2.0"},{"ts":"3.0","l":"not an array"},` +
				`{"ts":"4.0","l":[{"c":""},{"c":"   "}]},{"ts":"5.0","l":[{"c":"kept"}]}]`,
			expected: []Line{
				{Text: "kept", Time: Time{Total: 5, Seconds: 5}},
			},
		},
		{
			name:     "invalid json",
			body:     `[{"ts":`,
			expected: []Line{},
		},
		{
			name:     "not an array",
			body:     `{"ts":"1.0","l":[{"c":"x"}]}`,
			expected: []Line{},
		},
		{
			name:     "empty body",
			body:     "",
			expected: []Line{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lines := ParseRichSync(tt.body)
			require.NotNil(t, lines)
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

func TestParseRichSync_Invariants(t *testing.T) {
	t.Parallel()

	body := `[{"ts":"200.123","l":[{"c":"c"}]},{"ts":"0.5","l":[{"c":"a"}]},{"ts":61.999,"l":[{"c":"b"}]}]`
	lines := ParseRichSync(body)
	require.Len(t, lines, 3)

	for i, line := range lines {
		reconstructed := float64(line.Time.Minutes*60+line.Time.Seconds) + float64(line.Time.MS)/1000
		// MS is floored, so the reconstruction may lag by up to a millisecond.
		assert.InDelta(t, line.Time.Total, reconstructed, 0.001+1e-9)

		if i > 0 {
			assert.LessOrEqual(t, lines[i-1].Time.Total, line.Time.Total)
		}
	}

	assert.Equal(t, []string{"a", "b", "c"}, []string{lines[0].Text, lines[1].Text, lines[2].Text})
}

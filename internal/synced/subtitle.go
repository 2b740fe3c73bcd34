package synced

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

//nolint:gochecknoglobals // Immutable, pre-compiled pattern.
var subtitleLinePattern = regexp.MustCompile(`\[(\d{2}):(\d{2})\.(\d{2})\]\s*(.+)`)

// ParseSubtitle parses a subtitle body made of "[mm:ss.xx] text" lines.
//
// Blank and non-matching lines are skipped. Lines sharing a timestamp are merged
// into one, their texts joined by a single space in the order they appear.
// The result is sorted by start time.
func ParseSubtitle(body string) []Line {
	type group struct {
		minutes, seconds, hundredths int
		texts                        []string
	}

	var (
		order  []string
		groups = make(map[string]*group)
	)

	for rawLine := range strings.SplitSeq(body, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		match := subtitleLinePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		key := match[1] + ":" + match[2] + "." + match[3]

		g, ok := groups[key]
		if !ok {
			// Two-digit groups always parse.
			minutes, _ := strconv.Atoi(match[1])
			seconds, _ := strconv.Atoi(match[2])
			hundredths, _ := strconv.Atoi(match[3])

			g = &group{minutes: minutes, seconds: seconds, hundredths: hundredths}
			groups[key] = g
			order = append(order, key)
		}

		g.texts = append(g.texts, strings.TrimSpace(match[4]))
	}

	lines := make([]Line, 0, len(order))

	for _, key := range order {
		g := groups[key]

		text := joinNonEmpty(g.texts, func(s string) bool { return s != "" })
		if text == "" {
			continue
		}

		lines = append(lines, Line{
			Text: text,
			Time: Time{
				Total:   float64(g.minutes*60+g.seconds) + float64(g.hundredths)/100,
				Minutes: g.minutes,
				Seconds: g.seconds,
				MS:      g.hundredths * 10, //nolint:mnd // Hundredths to milliseconds.
			},
		})
	}

	sortByStart(lines)

	return lines
}

// joinNonEmpty joins the parts accepted by keep with single spaces and trims the result.
func joinNonEmpty(parts []string, keep func(string) bool) string {
	kept := make([]string, 0, len(parts))

	for _, part := range parts {
		if keep(part) {
			kept = append(kept, part)
		}
	}

	return strings.TrimSpace(strings.Join(kept, " "))
}

func sortByStart(lines []Line) {
	slices.SortStableFunc(lines, func(a, b Line) int {
		return cmp.Compare(a.Time.Total, b.Time.Total)
	})
}

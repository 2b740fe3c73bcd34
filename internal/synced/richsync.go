package synced

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// richSyncItem is one entry of a rich-sync body.
type richSyncItem struct {
	// TS is the start time in seconds, sent either as a number or as a string.
	TS json.RawMessage `json:"ts"`
	// L holds the fragments of the line.
	L []richSyncFragment `json:"l"`
}

// richSyncFragment is a word or a space inside a rich-sync line.
type richSyncFragment struct {
	// C is the fragment text.
	C string `json:"c"`
}

// ParseRichSync parses a rich-sync JSON body.
//
// Items without a usable start time or without fragments are skipped. Fragments of items
// sharing a start time are merged, whitespace-only fragments dropped and the rest joined
// by single spaces. Invalid JSON yields an empty result.
func ParseRichSync(body string) []Line {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(body), &items); err != nil {
		return []Line{}
	}

	var (
		order  []float64
		groups = make(map[float64][]string)
	)

	for _, raw := range items {
		var item richSyncItem
		if err := json.Unmarshal(raw, &item); err != nil {
			// Entries of an unexpected shape are ignored, the rest still count.
			continue
		}

		start, ok := parseStartTime(item.TS)
		if !ok || len(item.L) == 0 {
			continue
		}

		for _, fragment := range item.L {
			if fragment.C == "" {
				continue
			}

			if _, seen := groups[start]; !seen {
				order = append(order, start)
			}

			groups[start] = append(groups[start], fragment.C)
		}
	}

	lines := make([]Line, 0, len(order))

	for _, start := range order {
		text := joinNonEmpty(groups[start], func(s string) bool { return strings.TrimSpace(s) != "" })
		if text == "" {
			continue
		}

		lines = append(lines, Line{
			Text: text,
			Time: Time{
				Total:   start,
				Minutes: int(math.Floor(start / 60)),         //nolint:mnd // Seconds per minute.
				Seconds: int(math.Floor(math.Mod(start, 60))), //nolint:mnd // Seconds per minute.
				MS:      int(math.Floor(math.Mod(start, 1) * 1000)),
			},
		})
	}

	sortByStart(lines)

	return lines
}

// parseStartTime reads ts as a number or a numeric string.
// Missing, null, zero-valued numbers, empty strings and non-numeric values are rejected.
func parseStartTime(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}

	var (
		value float64
		err   error
	)

	if raw[0] == '"' {
		var s string
		if err = json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}

		s = strings.TrimSpace(s)
		if s == "" {
			return 0, false
		}

		value, err = strconv.ParseFloat(s, 64)
	} else {
		err = json.Unmarshal(raw, &value)
		if err == nil && value == 0 {
			return 0, false
		}
	}

	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}

	return value, true
}

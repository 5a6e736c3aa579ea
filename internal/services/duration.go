package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// durationPattern matches the ISO 8601 time portion used by the YouTube API, e.g. "PT1H2M3S", "PT45S".
var durationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

func durationParts(text string) (hours, minutes, seconds int, ok bool) {
	matches := durationPattern.FindStringSubmatch(text)
	if matches == nil {
		return 0, 0, 0, false
	}

	atoi := func(s string) int {
		if s == "" {
			return 0
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0
		}
		return n
	}

	return atoi(matches[1]), atoi(matches[2]), atoi(matches[3]), true
}

// FormatDuration converts a content duration such as "PT1H2M3S" to a clock string.
//
// Output is H:MM:SS when hours are present and M:SS otherwise. Input that does not
// match the grammar yields "0:00".
func FormatDuration(text string) string {
	hours, minutes, seconds, ok := durationParts(text)
	if !ok {
		return "0:00"
	}

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// ClockSeconds converts a clock string produced by [FormatDuration] back to seconds.
//
// Malformed input yields 0.
func ClockSeconds(clock string) int {
	parts := strings.Split(clock, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0
	}

	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0
		}
		total = total*60 + n
	}
	return total
}

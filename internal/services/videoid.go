package services

import "regexp"

var (
	videoURLPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`)
	videoIDPattern  = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
)

// ExtractVideoID pulls a video ID out of a watch, short-link or embed URL, or accepts a bare 11 character ID.
//
// A URL match wins over the bare form and is returned as captured; existence and
// canonical shape are checked later by [Normalizer.Fetch].
func ExtractVideoID(input string) (string, bool) {
	if m := videoURLPattern.FindStringSubmatch(input); m != nil && m[1] != "" {
		return m[1], true
	}

	if videoIDPattern.MatchString(input) {
		return input, true
	}

	return "", false
}

// IsVideoID reports whether s is a canonical 11 character video ID.
func IsVideoID(s string) bool {
	return videoIDPattern.MatchString(s)
}

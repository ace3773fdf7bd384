package version

import (
	"strconv"
	"strings"
)

// IsOutdated reports whether latest is a strictly newer release than
// current. Tags that do not parse as semantic versions (such as the "dev"
// build default) never report outdated.
func IsOutdated(current, latest string) bool {
	cur, okCur := parseRelease(current)
	lat, okLat := parseRelease(latest)
	if !okCur || !okLat {
		return false
	}
	for i := range cur {
		if cur[i] != lat[i] {
			return cur[i] < lat[i]
		}
	}
	return false
}

// parseRelease extracts the major.minor.patch numbers from a release tag,
// tolerating a v/V prefix and ignoring pre-release or build suffixes.
func parseRelease(tag string) ([3]int, bool) {
	var out [3]int

	s := strings.TrimSpace(tag)
	if len(s) > 0 && (s[0] == 'v' || s[0] == 'V') {
		s = s[1:]
	}
	if i := strings.IndexAny(s, "-+"); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return out, false
	}

	parts := strings.Split(s, ".")
	for i := 0; i < len(parts) && i < 3; i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return out, false
		}
		out[i] = n
	}
	return out, true
}

package media

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrDurationNotFound indicates that no parseable duration line was present
// in the probe output. Callers must treat this as fatal for the file since
// no segment plan can be computed without a total duration.
var ErrDurationNotFound = errors.New("duration not found in probe output")

// durationRegex matches ffmpeg's duration report line, e.g.
// "  Duration: 01:02:03.45, start: 0.000000, bitrate: 1205 kb/s"
var durationRegex = regexp.MustCompile(`Duration: (\d{2}):(\d{2}):(\d{2})\.(\d{2})`)

// ParseDuration extracts the total duration in seconds from the raw
// diagnostic text of an ffmpeg probe invocation.
//
// The first line containing "Duration:" is matched against the exact
// HH:MM:SS.cc layout ffmpeg emits. Any other layout (localized output,
// longer fractional parts) fails closed with ErrDurationNotFound rather
// than guessing.
func ParseDuration(probeOutput string) (float64, error) {
	for _, line := range strings.Split(probeOutput, "\n") {
		if !strings.Contains(line, "Duration:") {
			continue
		}

		matches := durationRegex.FindStringSubmatch(line)
		if matches == nil {
			return 0, ErrDurationNotFound
		}

		hours, _ := strconv.Atoi(matches[1])
		minutes, _ := strconv.Atoi(matches[2])
		seconds, _ := strconv.Atoi(matches[3])
		centiseconds, _ := strconv.Atoi(matches[4])

		total := float64(hours)*3600 + float64(minutes)*60 + float64(seconds) + float64(centiseconds)/100
		return total, nil
	}

	return 0, ErrDurationNotFound
}

// FormatSeconds renders a fractional second count the way it is passed to
// ffmpeg's -ss and -t arguments.
func FormatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}

package ffmpeg

import (
	"strconv"
	"strings"
)

// scanDuration finds the banner line carrying the container duration and
// converts the HH:MM:SS.ms token before the first comma to seconds.
func scanDuration(lines []string) (float64, bool) {
	for _, line := range lines {
		if !strings.Contains(line, "Duration") {
			continue
		}
		_, rest, found := strings.Cut(line, "Duration: ")
		if !found {
			continue
		}
		token, _, _ := strings.Cut(rest, ",")
		if seconds, ok := parseClock(token); ok {
			return seconds, true
		}
	}
	return 0, false
}

// scanFrameRate finds the video stream line and parses the numeric token
// immediately preceding the "fps" marker.
func scanFrameRate(lines []string) (float64, bool) {
	for _, line := range lines {
		if !strings.Contains(line, "Stream") || !strings.Contains(line, "Video") {
			continue
		}
		before, _, found := strings.Cut(line, "fps")
		if !found {
			continue
		}
		fields := strings.Fields(before)
		if len(fields) == 0 {
			continue
		}
		rate, err := strconv.ParseFloat(strings.TrimSuffix(fields[len(fields)-1], ","), 64)
		if err != nil || rate <= 0 {
			continue
		}
		return rate, true
	}
	return 0, false
}

// parseClock converts an HH:MM:SS or HH:MM:SS.frac token to seconds.
func parseClock(token string) (float64, bool) {
	parts := strings.Split(strings.TrimSpace(token), ":")
	if len(parts) != 3 {
		return 0, false
	}
	hours, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, false
	}
	return hours*3600 + minutes*60 + seconds, true
}

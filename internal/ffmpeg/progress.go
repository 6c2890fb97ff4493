package ffmpeg

import (
	"regexp"
	"strconv"
)

var progressPattern = regexp.MustCompile(`time=(\d+):(\d+):(\d+\.\d+)`)

// ParseElapsed extracts the elapsed transcode position from one diagnostic
// line, e.g. "frame=100 fps=25 ... time=00:00:45.00 bitrate=...".
func ParseElapsed(line string) (float64, bool) {
	match := progressPattern.FindStringSubmatch(line)
	if match == nil {
		return 0, false
	}
	hours, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.ParseFloat(match[2], 64)
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.ParseFloat(match[3], 64)
	if err != nil {
		return 0, false
	}
	return hours*3600 + minutes*60 + seconds, true
}

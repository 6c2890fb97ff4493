package plan

import (
	"fmt"
	"strconv"

	"fadecut/internal/config"
)

// Timing holds the absolute clip and fade times for one run, all in seconds.
//
// FadeOutStart is ClipEnd minus the fade-out duration and may be negative or
// overlap the fade-in when the configured fades exceed the clip span. That
// combination is passed to ffmpeg as-is rather than rejected; the intended
// policy for overlapping fades is unspecified upstream.
type Timing struct {
	ClipStart    float64
	ClipEnd      float64
	FadeIn       float64
	FadeOut      float64
	FadeOutStart float64
}

// InvalidTimingError reports a clip boundary that is neither "none" nor a
// number of seconds.
type InvalidTimingError struct {
	Field string
	Value string
}

func (e *InvalidTimingError) Error() string {
	return fmt.Sprintf("invalid %s: %q is not a number of seconds", e.Field, e.Value)
}

// ResolveTiming converts the optional clip boundaries into absolute times
// against the probed duration. A boundary of "none" (any case) or absence
// selects the default: 0 for the start, the full duration for the end.
func ResolveTiming(settings *config.Settings, duration float64) (Timing, error) {
	clipStart, err := resolveBoundary(settings.ClipStartTime, "clip_start_time", 0)
	if err != nil {
		return Timing{}, err
	}
	clipEnd, err := resolveBoundary(settings.ClipEndTime, "clip_end_time", duration)
	if err != nil {
		return Timing{}, err
	}

	fadeIn := settings.FadeIn()
	fadeOut := settings.FadeOut()

	return Timing{
		ClipStart:    clipStart,
		ClipEnd:      clipEnd,
		FadeIn:       fadeIn,
		FadeOut:      fadeOut,
		FadeOutStart: clipEnd - fadeOut,
	}, nil
}

func resolveBoundary(value, field string, fallback float64) (float64, error) {
	if config.IsNone(value) {
		return fallback, nil
	}
	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &InvalidTimingError{Field: field, Value: value}
	}
	return seconds, nil
}

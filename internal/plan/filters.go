package plan

import (
	"strconv"
	"strings"

	"fadecut/internal/config"
)

// Topology names the structural arrangement of audio streams feeding the
// output.
type Topology int

const (
	// TopologyDirect applies volume and fades to the primary stream only.
	TopologyDirect Topology = iota
	// TopologyMix blends the primary and background streams into one.
	TopologyMix
	// TopologyReplace keeps only the background stream, primary audio
	// discarded.
	TopologyReplace
)

func (t Topology) String() string {
	switch t {
	case TopologyMix:
		return "mix-with-background"
	case TopologyReplace:
		return "replace-with-background"
	default:
		return "direct"
	}
}

// FilterPlan carries the ordered video and audio filter fragments plus the
// chosen audio topology. Fragment order is load-bearing: ffmpeg applies a
// chain left to right.
type FilterPlan struct {
	Video    []string
	Audio    []string
	Topology Topology
}

// VideoChain joins the video fragments into one filter-chain string.
func (p FilterPlan) VideoChain() string {
	return strings.Join(p.Video, ",")
}

// AudioChain joins the audio fragments into one filter-chain string.
func (p FilterPlan) AudioChain() string {
	return strings.Join(p.Audio, ",")
}

// BuildFilters constructs the filter plan from the settings and resolved
// timing.
//
// The video chain is fade, then scale when an upscale target is set, then a
// timestamp rescale when the speed differs from 1.0. The audio chain mirrors
// the fade timings and appends a tempo adjustment for speed changes; atempo's
// documented multiplier range is not enforced here.
func BuildFilters(settings *config.Settings, timing Timing) FilterPlan {
	video := []string{
		"fade=t=in:st=0:d=" + formatFloat(timing.FadeIn) +
			",fade=t=out:st=" + formatFloat(timing.FadeOutStart) +
			":d=" + formatFloat(timing.FadeOut),
	}
	if resolution, ok := settings.Upscale(); ok {
		video = append(video, "scale="+resolution)
	}
	if settings.VideoSpeed != 1.0 {
		video = append(video, "setpts="+formatFloat(1.0/settings.VideoSpeed)+"*PTS")
	}

	audio := []string{
		"afade=t=in:st=0:d=" + formatFloat(timing.FadeIn) +
			",afade=t=out:st=" + formatFloat(timing.FadeOutStart) +
			":d=" + formatFloat(timing.FadeOut),
	}
	if settings.VideoSpeed != 1.0 {
		audio = append(audio, "atempo="+formatFloat(settings.VideoSpeed))
	}

	topology := TopologyDirect
	if settings.HasBackgroundAudio() {
		if settings.ReplaceAudio {
			topology = TopologyReplace
		} else {
			topology = TopologyMix
		}
	}

	return FilterPlan{Video: video, Audio: audio, Topology: topology}
}

// formatFloat renders a seconds or factor value the way ffmpeg expects:
// minimal digits, no exponent, no trailing zeros.
func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

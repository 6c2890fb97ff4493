package plan

import (
	"strconv"
	"strings"

	"fadecut/internal/config"
	"fadecut/internal/ffmpeg"
)

// Command is the complete, immutable token sequence of one ffmpeg
// invocation, program name first.
type Command struct {
	argv []string
}

// Argv returns a copy of the full token sequence.
func (c Command) Argv() []string {
	return append([]string(nil), c.argv...)
}

// String renders the command shell-style, quoting tokens containing
// whitespace.
func (c Command) String() string {
	quoted := make([]string, len(c.argv))
	for i, token := range c.argv {
		if strings.ContainsAny(token, " \t") {
			quoted[i] = strconv.Quote(token)
		} else {
			quoted[i] = token
		}
	}
	return strings.Join(quoted, " ")
}

// argGroup is one named, ordered run of tokens. The final command is the
// concatenation of groups in assembly order, so the ordering ffmpeg depends
// on for label and stream resolution is enforced by structure rather than by
// call-site discipline.
type argGroup struct {
	name   string
	tokens []string
}

// Assemble produces the ordered argument sequence for the transcode
// invocation: inputs and seeks first, then the video mapping and rate
// control, then the audio mapping, then the fixed output options.
func Assemble(settings *config.Settings, timing Timing, filters FilterPlan, probe ffmpeg.Probe) Command {
	groups := make([]argGroup, 0, 8)

	groups = append(groups, argGroup{"input", []string{"-i", settings.InputVideoPath}})
	if timing.ClipStart > 0 {
		groups = append(groups, argGroup{"seek-start", []string{"-ss", formatFloat(timing.ClipStart)}})
	}
	if timing.ClipEnd < probe.Duration {
		groups = append(groups, argGroup{"seek-end", []string{"-to", formatFloat(timing.ClipEnd)}})
	}
	if settings.HasBackgroundAudio() {
		groups = append(groups, argGroup{"background-input", []string{
			"-ss", formatFloat(settings.AudioStartTime),
			"-i", settings.BackgroundAudioPath,
		}})
	}

	groups = append(groups, videoGroups(settings, filters, probe)...)
	groups = append(groups, audioGroup(settings, filters))
	groups = append(groups, argGroup{"output", []string{
		"-c:a", "aac",
		"-b:a", "192k",
		"-y", settings.OutputVideoPath,
	}})

	argv := []string{settings.FFmpegPath}
	for _, group := range groups {
		argv = append(argv, group.tokens...)
	}
	return Command{argv: argv}
}

func videoGroups(settings *config.Settings, filters FilterPlan, probe ffmpeg.Probe) []argGroup {
	chain := filters.VideoChain()
	if chain == "" {
		return []argGroup{{"video-copy", []string{"-c:v", "copy"}}}
	}

	tokens := []string{
		"-filter_complex", "[0:v]" + chain + "[v]",
		"-map", "[v]",
	}
	if settings.VideoSpeed != 1.0 {
		tokens = append(tokens, "-r", formatFloat(probe.FrameRate*settings.VideoSpeed))
	}
	tokens = append(tokens, "-c:v", videoCodec(settings))

	return []argGroup{
		{"video-map", tokens},
		rateControlGroup(settings),
	}
}

func videoCodec(settings *config.Settings) string {
	if settings.UseGPU {
		return "hevc_nvenc"
	}
	return "libx265"
}

// rateControlGroup picks CRF only when one is configured and GPU encoding is
// off. A CRF configured alongside use_gpu is silently dropped in favor of
// the bitrate; hevc_nvenc does not take -crf.
func rateControlGroup(settings *config.Settings) argGroup {
	if crf, ok := settings.CRFValue(); ok && !settings.UseGPU {
		return argGroup{"rate-control", []string{"-crf", crf}}
	}
	return argGroup{"rate-control", []string{"-b:v", settings.VideoBitrate}}
}

// audioGroup builds the audio filter-graph segment for the plan's topology.
// Each variant yields exactly one labeled stream [a] mapped to the output.
func audioGroup(settings *config.Settings, filters FilterPlan) argGroup {
	fades := filters.AudioChain()
	original := formatFloat(settings.OriginalAudioVolume)
	background := formatFloat(settings.BackgroundAudioVolume)

	var graph string
	switch filters.Topology {
	case TopologyReplace:
		graph = "[1:a]volume=" + background + "," + fades + "[a]"
	case TopologyMix:
		graph = "[0:a]volume=" + original + "[a0];" +
			"[1:a]volume=" + background + "," + fades + "[a1];" +
			"[a0][a1]amix=inputs=2:duration=first:dropout_transition=3[a]"
	default:
		graph = "[0:a]volume=" + original + "," + fades + "[a]"
	}

	return argGroup{"audio-map", []string{"-filter_complex", graph, "-map", "[a]"}}
}

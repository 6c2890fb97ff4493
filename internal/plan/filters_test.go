package plan_test

import (
	"testing"

	"fadecut/internal/config"
	"fadecut/internal/plan"
)

func baseSettings() *config.Settings {
	return &config.Settings{
		InputVideoPath:        "in.mp4",
		OutputVideoPath:       "out.mp4",
		FFmpegPath:            "ffmpeg",
		VideoBitrate:          "6M",
		VideoSpeed:            1.0,
		OriginalAudioVolume:   1.0,
		BackgroundAudioVolume: 1.0,
	}
}

func resolve(t *testing.T, settings *config.Settings, duration float64) plan.Timing {
	t.Helper()
	timing, err := plan.ResolveTiming(settings, duration)
	if err != nil {
		t.Fatalf("ResolveTiming returned error: %v", err)
	}
	return timing
}

func TestBuildFiltersAlwaysEmitsFades(t *testing.T) {
	settings := baseSettings()
	settings.ClipEndTime = "80"
	filters := plan.BuildFilters(settings, resolve(t, settings, 300))

	if len(filters.Video) != 1 {
		t.Fatalf("unexpected video fragments: %v", filters.Video)
	}
	want := "fade=t=in:st=0:d=3,fade=t=out:st=77:d=3"
	if filters.Video[0] != want {
		t.Fatalf("video fade fragment:\n got %q\nwant %q", filters.Video[0], want)
	}
	if filters.Audio[0] != "afade=t=in:st=0:d=3,afade=t=out:st=77:d=3" {
		t.Fatalf("audio fade fragment: %q", filters.Audio[0])
	}
}

func TestBuildFiltersAppendsScaleForUpscale(t *testing.T) {
	settings := baseSettings()
	settings.UpscaleResolution = "3840:2160"
	filters := plan.BuildFilters(settings, resolve(t, settings, 60))

	if len(filters.Video) != 2 || filters.Video[1] != "scale=3840:2160" {
		t.Fatalf("unexpected video chain: %v", filters.Video)
	}

	settings.UpscaleResolution = "none"
	filters = plan.BuildFilters(settings, resolve(t, settings, 60))
	if len(filters.Video) != 1 {
		t.Fatalf("sentinel none should not scale: %v", filters.Video)
	}
}

func TestBuildFiltersSpeedChange(t *testing.T) {
	settings := baseSettings()
	settings.VideoSpeed = 2.0
	filters := plan.BuildFilters(settings, resolve(t, settings, 60))

	if filters.Video[len(filters.Video)-1] != "setpts=0.5*PTS" {
		t.Fatalf("unexpected setpts fragment: %v", filters.Video)
	}
	if filters.Audio[len(filters.Audio)-1] != "atempo=2" {
		t.Fatalf("unexpected atempo fragment: %v", filters.Audio)
	}

	if got := filters.VideoChain(); got != "fade=t=in:st=0:d=3,fade=t=out:st=57:d=3,setpts=0.5*PTS" {
		t.Fatalf("unexpected joined chain: %q", got)
	}
}

func TestBuildFiltersUnitSpeedOmitsTempoDirectives(t *testing.T) {
	settings := baseSettings()
	filters := plan.BuildFilters(settings, resolve(t, settings, 60))

	if len(filters.Video) != 1 || len(filters.Audio) != 1 {
		t.Fatalf("unexpected fragments at speed 1.0: %v %v", filters.Video, filters.Audio)
	}
}

func TestBuildFiltersTopologySelection(t *testing.T) {
	settings := baseSettings()
	if got := plan.BuildFilters(settings, resolve(t, settings, 60)).Topology; got != plan.TopologyDirect {
		t.Fatalf("expected direct topology, got %v", got)
	}

	settings.BackgroundAudioPath = "None"
	if got := plan.BuildFilters(settings, resolve(t, settings, 60)).Topology; got != plan.TopologyDirect {
		t.Fatalf("sentinel none should stay direct, got %v", got)
	}

	settings.BackgroundAudioPath = "music.flac"
	if got := plan.BuildFilters(settings, resolve(t, settings, 60)).Topology; got != plan.TopologyMix {
		t.Fatalf("expected mix topology, got %v", got)
	}

	settings.ReplaceAudio = true
	if got := plan.BuildFilters(settings, resolve(t, settings, 60)).Topology; got != plan.TopologyReplace {
		t.Fatalf("expected replace topology, got %v", got)
	}
}

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fadecut/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const minimalConfig = `
[settings]
input_video_path = "in.mp4"
output_video_path = "out.mp4"
video_bitrate = "6M"
`

func TestLoadMinimalConfigAppliesDefaults(t *testing.T) {
	path := writeConfig(t, minimalConfig)

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}

	s := cfg.Settings
	if s.FFmpegPath != "ffmpeg" {
		t.Fatalf("unexpected ffmpeg path: %q", s.FFmpegPath)
	}
	if s.VideoSpeed != 1.0 {
		t.Fatalf("unexpected video speed: %v", s.VideoSpeed)
	}
	if s.OriginalAudioVolume != 1.0 || s.BackgroundAudioVolume != 1.0 {
		t.Fatalf("unexpected volumes: %v %v", s.OriginalAudioVolume, s.BackgroundAudioVolume)
	}
	if got := s.FadeIn(); got != 3.0 {
		t.Fatalf("expected default fade-in 3.0, got %v", got)
	}
	if got := s.FadeOut(); got != 3.0 {
		t.Fatalf("expected default fade-out 3.0, got %v", got)
	}
	if s.HasBackgroundAudio() {
		t.Fatal("expected no background audio by default")
	}
	if _, ok := s.CRFValue(); ok {
		t.Fatal("expected no CRF by default")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if !filepath.IsAbs(s.InputVideoPath) {
		t.Fatalf("expected expanded input path, got %q", s.InputVideoPath)
	}
}

func TestLoadRejectsMissingRequiredFields(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "input",
			body: `
[settings]
output_video_path = "out.mp4"
video_bitrate = "6M"
`,
			want: "settings.input_video_path",
		},
		{
			name: "output",
			body: `
[settings]
input_video_path = "in.mp4"
video_bitrate = "6M"
`,
			want: "settings.output_video_path",
		},
		{
			name: "bitrate",
			body: `
[settings]
input_video_path = "in.mp4"
output_video_path = "out.mp4"
`,
			want: "settings.video_bitrate",
		},
		{
			name: "ffmpeg",
			body: `
[settings]
input_video_path = "in.mp4"
output_video_path = "out.mp4"
video_bitrate = "6M"
ffmpeg_path = ""
`,
			want: "settings.ffmpeg_path",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.body)
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error naming %s, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadRejectsBadRanges(t *testing.T) {
	path := writeConfig(t, minimalConfig+"video_speed = 0.0\n")
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for zero video_speed")
	}

	path = writeConfig(t, minimalConfig+"fade_in_duration = -1.0\n")
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for negative fade_in_duration")
	}
}

func TestIsNone(t *testing.T) {
	for _, value := range []string{"", "none", "None", "NONE", "  none  "} {
		if !config.IsNone(value) {
			t.Fatalf("expected %q to be none", value)
		}
	}
	for _, value := range []string{"28", "3840:2160", "nonempty"} {
		if config.IsNone(value) {
			t.Fatalf("expected %q to not be none", value)
		}
	}
}

func TestOptionalAccessors(t *testing.T) {
	path := writeConfig(t, minimalConfig+`
crf = "28"
upscale_resolution = "3840:2160"
background_audio_path = "music.flac"
fade_in_duration = 1.5
`)
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	s := cfg.Settings
	if crf, ok := s.CRFValue(); !ok || crf != "28" {
		t.Fatalf("unexpected CRF: %q %v", crf, ok)
	}
	if res, ok := s.Upscale(); !ok || res != "3840:2160" {
		t.Fatalf("unexpected upscale: %q %v", res, ok)
	}
	if !s.HasBackgroundAudio() {
		t.Fatal("expected background audio")
	}
	if got := s.FadeIn(); got != 1.5 {
		t.Fatalf("unexpected fade-in: %v", got)
	}
	if got := s.FadeOut(); got != 3.0 {
		t.Fatalf("unexpected fade-out: %v", got)
	}
}

func TestCreateSampleProducesLoadableFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Settings.VideoBitrate == "" {
		t.Fatal("expected sample to set a bitrate")
	}
}

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Settings describes one processing run: where the input and output live,
// which encoder path to take, and the trim/fade/speed/audio-mix parameters
// that shape the synthesized ffmpeg invocation.
//
// Optional string fields (crf, upscale_resolution, background_audio_path,
// clip_start_time, clip_end_time) accept the literal value "none" (any case)
// or the empty string to mean "unset".
type Settings struct {
	InputVideoPath        string   `toml:"input_video_path"`
	OutputVideoPath       string   `toml:"output_video_path"`
	FFmpegPath            string   `toml:"ffmpeg_path"`
	UseGPU                bool     `toml:"use_gpu"`
	VideoBitrate          string   `toml:"video_bitrate"`
	CRF                   string   `toml:"crf"`
	UpscaleResolution     string   `toml:"upscale_resolution"`
	BackgroundAudioPath   string   `toml:"background_audio_path"`
	AudioStartTime        float64  `toml:"audio_start_time"`
	ReplaceAudio          bool     `toml:"replace_audio"`
	OriginalAudioVolume   float64  `toml:"original_audio_volume"`
	BackgroundAudioVolume float64  `toml:"background_audio_volume"`
	ClipStartTime         string   `toml:"clip_start_time"`
	ClipEndTime           string   `toml:"clip_end_time"`
	VideoSpeed            float64  `toml:"video_speed"`
	AdvancedLog           bool     `toml:"advanced_log"`
	FadeInDuration        *float64 `toml:"fade_in_duration"`
	FadeOutDuration       *float64 `toml:"fade_out_duration"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for fadecut.
type Config struct {
	Settings Settings `toml:"settings"`
	Logging  Logging  `toml:"logging"`
}

// IsNone reports whether an optional settings value is unset, either by
// absence or by the "none" sentinel.
func IsNone(value string) bool {
	trimmed := strings.TrimSpace(value)
	return trimmed == "" || strings.EqualFold(trimmed, "none")
}

// HasBackgroundAudio reports whether a background audio track is configured.
func (s *Settings) HasBackgroundAudio() bool {
	return !IsNone(s.BackgroundAudioPath)
}

// CRFValue returns the configured constant-rate-factor value, if any.
func (s *Settings) CRFValue() (string, bool) {
	if IsNone(s.CRF) {
		return "", false
	}
	return strings.TrimSpace(s.CRF), true
}

// Upscale returns the configured upscale resolution, if any.
func (s *Settings) Upscale() (string, bool) {
	if IsNone(s.UpscaleResolution) {
		return "", false
	}
	return strings.TrimSpace(s.UpscaleResolution), true
}

// FadeIn returns the fade-in duration in seconds, defaulted when unset.
func (s *Settings) FadeIn() float64 {
	if s.FadeInDuration == nil {
		return defaultFadeSeconds
	}
	return *s.FadeInDuration
}

// FadeOut returns the fade-out duration in seconds, defaulted when unset.
func (s *Settings) FadeOut() float64 {
	if s.FadeOutDuration == nil {
		return defaultFadeSeconds
	}
	return *s.FadeOutDuration
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/fadecut/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("fadecut.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

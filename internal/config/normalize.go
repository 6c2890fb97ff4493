package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeSettings(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeSettings() error {
	s := &c.Settings

	var err error
	if s.InputVideoPath != "" {
		if s.InputVideoPath, err = expandPath(s.InputVideoPath); err != nil {
			return fmt.Errorf("settings.input_video_path: %w", err)
		}
	}
	if s.OutputVideoPath != "" {
		if s.OutputVideoPath, err = expandPath(s.OutputVideoPath); err != nil {
			return fmt.Errorf("settings.output_video_path: %w", err)
		}
	}
	if s.HasBackgroundAudio() {
		if s.BackgroundAudioPath, err = expandPath(strings.TrimSpace(s.BackgroundAudioPath)); err != nil {
			return fmt.Errorf("settings.background_audio_path: %w", err)
		}
	}

	// The ffmpeg path may be a bare binary name resolved via PATH; only
	// expand it when it is clearly a filesystem path.
	s.FFmpegPath = strings.TrimSpace(s.FFmpegPath)
	if strings.HasPrefix(s.FFmpegPath, "~") {
		if s.FFmpegPath, err = expandPath(s.FFmpegPath); err != nil {
			return fmt.Errorf("settings.ffmpeg_path: %w", err)
		}
	}

	s.VideoBitrate = strings.TrimSpace(s.VideoBitrate)
	s.CRF = strings.TrimSpace(s.CRF)
	s.UpscaleResolution = strings.TrimSpace(s.UpscaleResolution)
	s.ClipStartTime = strings.TrimSpace(s.ClipStartTime)
	s.ClipEndTime = strings.TrimSpace(s.ClipEndTime)
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = defaultLogFormat
	case "json":
	default:
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable. Required fields are checked
// before any external process is launched so a bad config never reaches
// ffmpeg.
func (c *Config) Validate() error {
	if err := c.validateRequired(); err != nil {
		return err
	}
	return c.validateRanges()
}

func (c *Config) validateRequired() error {
	required := []struct {
		key   string
		value string
	}{
		{"settings.input_video_path", c.Settings.InputVideoPath},
		{"settings.output_video_path", c.Settings.OutputVideoPath},
		{"settings.ffmpeg_path", c.Settings.FFmpegPath},
		{"settings.video_bitrate", c.Settings.VideoBitrate},
	}
	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("%s must be set", field.key)
		}
	}
	return nil
}

func (c *Config) validateRanges() error {
	s := &c.Settings
	if s.VideoSpeed <= 0 {
		return errors.New("settings.video_speed must be positive")
	}
	if s.OriginalAudioVolume < 0 {
		return errors.New("settings.original_audio_volume must be >= 0")
	}
	if s.BackgroundAudioVolume < 0 {
		return errors.New("settings.background_audio_volume must be >= 0")
	}
	if s.AudioStartTime < 0 {
		return errors.New("settings.audio_start_time must be >= 0")
	}
	if s.FadeInDuration != nil && *s.FadeInDuration < 0 {
		return errors.New("settings.fade_in_duration must be >= 0")
	}
	if s.FadeOutDuration != nil && *s.FadeOutDuration < 0 {
		return errors.New("settings.fade_out_duration must be >= 0")
	}
	return nil
}

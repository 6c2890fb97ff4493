package config

const (
	defaultFFmpegBinary = "ffmpeg"
	defaultFadeSeconds  = 3.0
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Settings: Settings{
			FFmpegPath:            defaultFFmpegBinary,
			OriginalAudioVolume:   1.0,
			BackgroundAudioVolume: 1.0,
			VideoSpeed:            1.0,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

package config

const (
	defaultConfigPath       = "~/.config/photosort/config.toml"
	defaultArchiveFolder    = "originals"
	defaultRawFolder        = "raw"
	defaultJpegFolder       = "jpg"
	defaultInteractive      = true
	defaultExitDelaySeconds = 5
	defaultLogFormat        = "console"
	defaultLogLevel         = "warn"
)

// maxExitDelaySeconds caps the exit pause so a typo cannot hang a run.
const maxExitDelaySeconds = 600

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Folders: Folders{
			Archive: defaultArchiveFolder,
			Raw:     defaultRawFolder,
			Jpeg:    defaultJpegFolder,
		},
		Prompt: Prompt{
			Interactive:      defaultInteractive,
			ExitDelaySeconds: defaultExitDelaySeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

package testsupport

import (
	"testing"

	"photosort/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a default config with the exit pause disabled so tests
// never sleep. Options are applied in order.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Prompt.ExitDelaySeconds = 0
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	return &cfg
}

// WithExtraFolders appends extra folders to provision next to the archive.
func WithExtraFolders(names ...string) ConfigOption {
	return func(c *config.Config) {
		c.Folders.Extra = append(c.Folders.Extra, names...)
	}
}

// WithNonInteractive disables confirmation prompts.
func WithNonInteractive() ConfigOption {
	return func(c *config.Config) {
		c.Prompt.Interactive = false
	}
}

// WithFolders overrides the archive and kind folder names.
func WithFolders(archive, raw, jpeg string) ConfigOption {
	return func(c *config.Config) {
		c.Folders.Archive = archive
		c.Folders.Raw = raw
		c.Folders.Jpeg = jpeg
	}
}

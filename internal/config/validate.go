package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFolders(); err != nil {
		return err
	}
	if err := c.validatePrompt(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateFolders() error {
	if err := validateFolderName("folders.archive", c.Folders.Archive); err != nil {
		return err
	}
	if err := validateFolderName("folders.raw", c.Folders.Raw); err != nil {
		return err
	}
	if err := validateFolderName("folders.jpeg", c.Folders.Jpeg); err != nil {
		return err
	}
	// Case-insensitive filesystems would merge the two kind folders.
	if strings.EqualFold(c.Folders.Raw, c.Folders.Jpeg) {
		return errors.New("folders.raw and folders.jpeg must differ")
	}
	for _, name := range c.Folders.Extra {
		if err := validateFolderName("folders.extra", name); err != nil {
			return err
		}
		if strings.EqualFold(name, c.Folders.Archive) {
			return fmt.Errorf("folders.extra: %q duplicates the archive folder", name)
		}
	}
	return nil
}

func validateFolderName(field, name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%s must be set", field)
	case name == "." || name == "..":
		return fmt.Errorf("%s: %q is not a folder name", field, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%s: %q must be a single folder name without path separators", field, name)
	}
	return nil
}

func (c *Config) validatePrompt() error {
	if c.Prompt.ExitDelaySeconds < 0 {
		return errors.New("prompt.exit_delay_seconds must be zero or positive")
	}
	if c.Prompt.ExitDelaySeconds > maxExitDelaySeconds {
		return fmt.Errorf("prompt.exit_delay_seconds must be at most %d", maxExitDelaySeconds)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

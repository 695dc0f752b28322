package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeFolders()
	return c.normalizeLogging()
}

func (c *Config) normalizeFolders() {
	c.Folders.Archive = strings.TrimSpace(c.Folders.Archive)
	if c.Folders.Archive == "" {
		c.Folders.Archive = defaultArchiveFolder
	}
	c.Folders.Raw = strings.TrimSpace(c.Folders.Raw)
	if c.Folders.Raw == "" {
		c.Folders.Raw = defaultRawFolder
	}
	c.Folders.Jpeg = strings.TrimSpace(c.Folders.Jpeg)
	if c.Folders.Jpeg == "" {
		c.Folders.Jpeg = defaultJpegFolder
	}

	seen := make(map[string]struct{}, len(c.Folders.Extra))
	extras := make([]string, 0, len(c.Folders.Extra))
	for _, name := range c.Folders.Extra {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		extras = append(extras, name)
	}
	if len(extras) == 0 {
		extras = nil
	}
	c.Folders.Extra = extras
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	file := strings.TrimSpace(c.Logging.File)
	if file == "" {
		c.Logging.File = ""
		return nil
	}
	expanded, err := expandPath(file)
	if err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	c.Logging.File = expanded
	return nil
}

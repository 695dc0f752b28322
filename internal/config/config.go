package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// ProjectFileName is the per-directory config file consulted when no user
// config exists.
const ProjectFileName = "photosort.toml"

// Folders names the directory skeleton created inside the working directory.
type Folders struct {
	Archive string   `toml:"archive"`
	Raw     string   `toml:"raw"`
	Jpeg    string   `toml:"jpeg"`
	Extra   []string `toml:"extra"`
}

// Prompt controls interactive confirmation and the exit pause.
type Prompt struct {
	// Interactive asks before deleting and waits for a line before exiting.
	// When false, deletion proceeds unprompted and the run pauses for
	// ExitDelaySeconds instead.
	Interactive      bool `toml:"interactive"`
	ExitDelaySeconds int  `toml:"exit_delay_seconds"`
}

// Logging contains configuration for structured log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	File   string `toml:"file"`
}

// Config encapsulates all configuration values for photosort.
//
// Configuration sections:
//   - Folders: archive and per-kind subfolder names plus extra folders
//   - Prompt: confirmation mode and exit delay
//   - Logging: structured log format, level and optional file sink
type Config struct {
	Folders Folders `toml:"folders"`
	Prompt  Prompt  `toml:"prompt"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. An empty path
// searches the user config location and then workDir/photosort.toml. The
// returned config has all path fields expanded and normalized.
func Load(path, workDir string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path, workDir)
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
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
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

func resolveConfigPath(path, workDir string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		info, err := os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", false, fmt.Errorf("config file %s not found", expanded)
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		if info.IsDir() {
			return "", false, fmt.Errorf("config path %s is a directory", expanded)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}

	if workDir == "" {
		workDir = "."
	}
	projectPath, err := filepath.Abs(filepath.Join(workDir, ProjectFileName))
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// AddExtraFolders appends command-line folder names after the configured
// extras and revalidates the folder set.
func (c *Config) AddExtraFolders(names ...string) error {
	if len(names) == 0 {
		return nil
	}
	c.Folders.Extra = append(c.Folders.Extra, names...)
	c.normalizeFolders()
	return c.validateFolders()
}

// ExitDelay returns the non-interactive exit pause.
func (c *Config) ExitDelay() time.Duration {
	return time.Duration(c.Prompt.ExitDelaySeconds) * time.Second
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

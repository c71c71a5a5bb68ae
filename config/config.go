// Package config provides the editor's runtime configuration.
//
// Settings load from a YAML file, by default
// os.UserConfigDir()/campusnav/config.yaml; a missing file yields the
// defaults, a malformed or out-of-range file is an error. Only
// presentation and tooling knobs live here — graphs themselves are never
// persisted.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"
)

const (
	// appDir is the directory name under os.UserConfigDir().
	appDir = "campusnav"

	// configFile is the settings file name inside appDir.
	configFile = "config.yaml"
)

// ErrInvalidConfig flags a configuration that parsed but fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every tunable the editor and CLI expose.
type Config struct {
	// AnimationDelayMs is the delay between traversal animation steps.
	AnimationDelayMs int `yaml:"animation_delay_ms"`

	// NodeRadius is the node hit-test radius in canvas units.
	NodeRadius float64 `yaml:"node_radius"`

	// EdgeThreshold is the edge hit-test proximity threshold.
	EdgeThreshold float64 `yaml:"edge_threshold"`

	// MinWeight and MaxWeight bound the weight randomizer, inclusive.
	MinWeight int `yaml:"min_weight"`
	MaxWeight int `yaml:"max_weight"`

	// Seed, when non-zero, makes weight randomization reproducible.
	Seed int64 `yaml:"seed"`

	// LogFile receives debug logging; empty disables it. The editor owns
	// the terminal, so logs never go to stderr while it runs.
	LogFile string `yaml:"log_file"`
}

// Default returns the configuration used when no file exists, mirroring the
// original canvas geometry and animation speed.
func Default() Config {
	return Config{
		AnimationDelayMs: 200,
		NodeRadius:       18,
		EdgeThreshold:    6,
		MinWeight:        1,
		MaxWeight:        200,
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot determine config directory: %w", err)
	}

	return filepath.Join(base, appDir, configFile), nil
}

// Load reads the configuration from path. A missing file is not an error:
// the defaults are returned. Values absent from the file keep their
// defaults; the merged result is validated before being returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks range constraints; every violation is reported wrapped
// around ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.AnimationDelayMs < 0:
		return fmt.Errorf("%w: animation_delay_ms must be >= 0, got %d", ErrInvalidConfig, c.AnimationDelayMs)
	case c.NodeRadius <= 0:
		return fmt.Errorf("%w: node_radius must be > 0, got %v", ErrInvalidConfig, c.NodeRadius)
	case c.EdgeThreshold <= 0:
		return fmt.Errorf("%w: edge_threshold must be > 0, got %v", ErrInvalidConfig, c.EdgeThreshold)
	case c.MinWeight < 1:
		return fmt.Errorf("%w: min_weight must be >= 1, got %d", ErrInvalidConfig, c.MinWeight)
	case c.MaxWeight < c.MinWeight:
		return fmt.Errorf("%w: max_weight %d below min_weight %d", ErrInvalidConfig, c.MaxWeight, c.MinWeight)
	}

	return nil
}

// AnimationDelay returns the inter-step delay as a Duration.
func (c Config) AnimationDelay() time.Duration {
	return time.Duration(c.AnimationDelayMs) * time.Millisecond
}

// SPDX-License-Identifier: MIT

package clustering

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tangles/internal/logging"
	"github.com/katalvlaran/tangles/tree"
)

// ErrInvalidConfig wraps every validation failure of a Config.
var ErrInvalidConfig = errors.New("clustering: invalid config")

var configValidate = validator.New()

// Config holds the pipeline parameters.
type Config struct {
	// Agreement is the minimum support every tangle must keep.
	Agreement int `yaml:"agreement" validate:"gte=1"`

	// MaxClusters caps the active frontier during growth; 0 disables it.
	MaxClusters int `yaml:"max_clusters" validate:"gte=0"`

	// PruneDepth is the cut distance below which leaves count as noise;
	// 0 disables pruning.
	PruneDepth int `yaml:"prune_depth" validate:"gte=0"`

	// Parallelism bounds the soft-prediction fan-out per tree level.
	Parallelism int `yaml:"parallelism" validate:"gte=1"`

	// LogLevel and LogFormat configure InitLogging.
	LogLevel  string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" validate:"omitempty,oneof=text json"`
}

// DefaultConfig returns agreement 1, the default cluster cap, prune depth 1,
// sequential propagation and info-level text logs.
func DefaultConfig() Config {
	return Config{
		Agreement:   1,
		MaxClusters: tree.DefaultMaxClusters,
		PruneDepth:  1,
		Parallelism: 1,
		LogLevel:    "info",
		LogFormat:   logging.FormatText,
	}
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// ParseConfig overlays YAML data on DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("clustering: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("clustering: read config %q: %w", path, err)
	}

	return ParseConfig(data)
}

// InitLogging installs the process-wide slog handler described by the
// config. w defaults to stderr.
func (c Config) InitLogging(w io.Writer) {
	logging.Init(logging.ParseLevel(c.LogLevel), c.LogFormat, w)
}

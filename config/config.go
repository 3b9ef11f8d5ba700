package config

import (
	"os"

	"github.com/ar90n/primext"
	"github.com/ar90n/primext/pipeline"
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type RangeConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type BatchConfig struct {
	// Workers is the number of goroutines used by batch wrapping; 0 means
	// one per CPU.
	Workers int `yaml:"workers"`
	// Buffer is the capacity of the line and result channels.
	Buffer int `yaml:"buffer"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Wrap  RangeConfig `yaml:"wrap"`
	Batch BatchConfig `yaml:"batch"`
	Log   LogConfig   `yaml:"log"`
}

// Default wraps angles in degrees.
func Default() Config {
	return Config{
		Wrap:  RangeConfig{Min: 0, Max: 360},
		Batch: BatchConfig{Workers: 0, Buffer: pipeline.DefaultBufferSize},
		Log:   LogConfig{Level: "info"},
	}
}

// Load reads a YAML file on top of Default. An empty path yields the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := Parse(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "failed to load config %s", path)
	}

	return cfg, nil
}

func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Mark(errors.Wrap(err, "failed to parse yaml"), primext.ErrInvalidConfig)
	}
	return cfg.Validate()
}

func (c Config) Validate() error {
	if c.Wrap.Min > c.Wrap.Max {
		return errors.Mark(
			errors.Wrapf(primext.ErrInvalidRange, "wrap.min %v is greater than wrap.max %v", c.Wrap.Min, c.Wrap.Max),
			primext.ErrInvalidConfig,
		)
	}
	if c.Batch.Workers < 0 {
		return errors.Wrapf(primext.ErrInvalidConfig, "batch.workers must not be negative, got %d", c.Batch.Workers)
	}
	if c.Batch.Buffer < 0 {
		return errors.Wrapf(primext.ErrInvalidConfig, "batch.buffer must not be negative, got %d", c.Batch.Buffer)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Mark(errors.Wrap(err, "log.level"), primext.ErrInvalidConfig)
	}
	return nil
}

package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config is the effective shtool configuration, merged from defaults, an
// optional YAML file, SHTOOL_* environment variables and flags (in increasing
// priority).
type Config struct {
	LogLevel    string         `mapstructure:"log_level" yaml:"log_level"`
	Workers     int            `mapstructure:"workers" yaml:"workers"`
	Precision   string         `mapstructure:"precision" yaml:"precision"`
	MetricsFile string         `mapstructure:"metrics_file" yaml:"metrics_file"`
	Output      string         `mapstructure:"output" yaml:"output"`
	MaxL        int            `mapstructure:"max_l" yaml:"max_l"`
	Sampling    SamplingConfig `mapstructure:"sampling" yaml:"sampling"`
	Batch       BatchConfig    `mapstructure:"batch" yaml:"batch"`
}

// SamplingConfig configures the sphere tessellation.
type SamplingConfig struct {
	Longitudes int `mapstructure:"longitudes" yaml:"longitudes"`
	Latitudes  int `mapstructure:"latitudes" yaml:"latitudes"`
	Directions int `mapstructure:"directions" yaml:"directions"`
}

// BatchConfig is the instance grid of the batched kernels.
type BatchConfig struct {
	X int `mapstructure:"x" yaml:"x"`
	Y int `mapstructure:"y" yaml:"y"`
	Z int `mapstructure:"z" yaml:"z"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("workers", 0) // 0 = GOMAXPROCS
	v.SetDefault("precision", "float64")
	v.SetDefault("metrics_file", "")
	v.SetDefault("output", "")
	v.SetDefault("max_l", 4)

	v.SetDefault("sampling.longitudes", 64)
	v.SetDefault("sampling.latitudes", 33)
	v.SetDefault("sampling.directions", 1024)

	v.SetDefault("batch.x", 1)
	v.SetDefault("batch.y", 1)
	v.SetDefault("batch.z", 1)
}

// loadConfig reads the optional config file and unmarshals v into a
// validated Config.
func loadConfig(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix("SHTOOL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	switch cfg.Precision {
	case "float32", "float64":
	default:
		return errors.Errorf("precision must be float32 or float64, got %q", cfg.Precision)
	}
	if cfg.Workers < 0 {
		return errors.New("workers cannot be negative")
	}
	if cfg.MaxL < 0 {
		return errors.Errorf("max_l cannot be negative, got %d", cfg.MaxL)
	}
	if cfg.Sampling.Longitudes < 1 {
		return errors.New("sampling.longitudes must be at least 1")
	}
	// phi = pi*latitude/(latitudes-1) needs two rows for the poles.
	if cfg.Sampling.Latitudes < 2 {
		return errors.New("sampling.latitudes must be at least 2")
	}
	if cfg.Sampling.Directions < 1 {
		return errors.New("sampling.directions must be positive")
	}
	if cfg.Batch.X < 1 || cfg.Batch.Y < 1 || cfg.Batch.Z < 1 {
		return errors.Errorf("batch dimensions must be positive, got %dx%dx%d", cfg.Batch.X, cfg.Batch.Y, cfg.Batch.Z)
	}
	return nil
}

// Package config holds the command-line driver configuration, loaded with
// viper from defaults, an optional YAML file and PWL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/pwl/weights"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix is the prefix of environment overrides, e.g. PWL_TRANSFORM_ITERATIONS.
const EnvPrefix = "PWL"

// Config is the root configuration.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	Transform TransformConfig `mapstructure:"transform"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// LoggerConfig configures the zap logger and its rotated log file.
type LoggerConfig struct {
	Level       string `mapstructure:"level"`
	Format      string `mapstructure:"format"`
	ServiceName string `mapstructure:"service_name"`
	LogFile     string `mapstructure:"log_file"`
	MaxSize     int    `mapstructure:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAge      int    `mapstructure:"max_age"`
	Compress    bool   `mapstructure:"compress"`
}

// TransformConfig configures the persistent WL transform.
type TransformConfig struct {
	Dataset          string  `mapstructure:"dataset"`
	Iterations       int     `mapstructure:"iterations"`
	Cycles           bool    `mapstructure:"cycles"`
	OriginalFeatures bool    `mapstructure:"original_features"`
	Metric           string  `mapstructure:"metric"`
	P                float64 `mapstructure:"p"`
	Tau              float64 `mapstructure:"tau"`
	Power            float64 `mapstructure:"power"`
	Workers          int     `mapstructure:"workers"`
	SkipFailures     bool    `mapstructure:"skip_failures"`
}

// MetricsConfig configures the Prometheus textfile output.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "pwl")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", false)

	v.SetDefault("transform.dataset", "")
	v.SetDefault("transform.iterations", 3)
	v.SetDefault("transform.cycles", false)
	v.SetDefault("transform.original_features", false)
	v.SetDefault("transform.metric", weights.MetricMinkowski)
	v.SetDefault("transform.p", weights.DefaultOrder)
	v.SetDefault("transform.tau", 1.0)
	v.SetDefault("transform.power", 1.0)
	v.SetDefault("transform.workers", 1)
	v.SetDefault("transform.skip_failures", false)

	v.SetDefault("metrics.textfile", "")
}

// NewViper returns a viper instance with defaults, environment overrides
// and, if path is non-empty, the YAML file at path.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	return v, nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges. Every failure wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Logger.Level); err != nil {
		return fmt.Errorf("%w: logger.level %q", ErrInvalidConfig, c.Logger.Level)
	}
	if c.Logger.Format != "console" && c.Logger.Format != "json" {
		return fmt.Errorf("%w: logger.format %q (want console or json)", ErrInvalidConfig, c.Logger.Format)
	}

	t := c.Transform
	if t.Iterations < 1 {
		return fmt.Errorf("%w: transform.iterations=%d must be >= 1", ErrInvalidConfig, t.Iterations)
	}
	if _, err := weights.ParseMetric(t.Metric, t.P); err != nil {
		return fmt.Errorf("%w: transform.metric: %w", ErrInvalidConfig, err)
	}
	if t.Tau < 0 || math.IsNaN(t.Tau) || math.IsInf(t.Tau, 0) {
		return fmt.Errorf("%w: transform.tau=%v", ErrInvalidConfig, t.Tau)
	}
	if t.Power <= 0 || math.IsNaN(t.Power) || math.IsInf(t.Power, 0) {
		return fmt.Errorf("%w: transform.power=%v", ErrInvalidConfig, t.Power)
	}
	if t.Workers < 1 {
		return fmt.Errorf("%w: transform.workers=%d", ErrInvalidConfig, t.Workers)
	}

	return nil
}

// LogFileName returns Logger.LogFile, or "<dataset>_<iterations>.log" when
// no file is set but a dataset name is. Empty means no file output.
func (c *Config) LogFileName() string {
	if c.Logger.LogFile != "" || c.Transform.Dataset == "" {
		return c.Logger.LogFile
	}

	return fmt.Sprintf("%s_%02d.log", c.Transform.Dataset, c.Transform.Iterations)
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads axisplot configuration from files, the
// environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/aclements/go-plotaxis/chart"
)

// EnvPrefix is the prefix of environment variables that override
// configuration keys, such as AXISPLOT_Y_MIN_MODE.
const EnvPrefix = "AXISPLOT"

// ErrInvalid is returned for configuration values that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete axisplot configuration.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger"`
	Output OutputConfig `mapstructure:"output"`
	X      AxisConfig   `mapstructure:"x"`
	Y      AxisConfig   `mapstructure:"y"`
}

// LoggerConfig configures the process logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level"`
	Format      string `mapstructure:"format"`
	Color       bool   `mapstructure:"color"`
	AddSource   bool   `mapstructure:"add_source"`
	ServiceName string `mapstructure:"service_name"`

	// LogFile, if set, receives JSON logs in addition to the
	// console. It is rotated according to the Max* fields.
	LogFile    string `mapstructure:"log_file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// OutputConfig configures the rendered image.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// AxisConfig configures one chart axis. The string fields use the
// names accepted by chart.ParseScaleType and chart.ParseMode.
type AxisConfig struct {
	Scale        string   `mapstructure:"scale"`
	MinMode      string   `mapstructure:"min_mode"`
	MaxMode      string   `mapstructure:"max_mode"`
	Min          *float64 `mapstructure:"min"`
	Max          *float64 `mapstructure:"max"`
	Ticks        int      `mapstructure:"ticks"`
	Padding      float64  `mapstructure:"padding"`
	OuterPadding float64  `mapstructure:"outer_padding"`
	Distinct     bool     `mapstructure:"distinct"`
}

// SetDefaults sets the default value of every configuration key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.color", false)
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "axisplot")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", false)

	v.SetDefault("output.format", "svg")
	v.SetDefault("output.width", 640)
	v.SetDefault("output.height", 400)
	v.SetDefault("output.title", "")

	for _, axis := range []struct {
		name  string
		ticks int
	}{{"x", chart.DefaultXTicks}, {"y", chart.DefaultYTicks}} {
		v.SetDefault(axis.name+".scale", "linear")
		v.SetDefault(axis.name+".min_mode", "auto")
		v.SetDefault(axis.name+".max_mode", "auto")
		v.SetDefault(axis.name+".ticks", axis.ticks)
		v.SetDefault(axis.name+".padding", 0.1)
		v.SetDefault(axis.name+".outer_padding", 0.1)
		v.SetDefault(axis.name+".distinct", false)
	}
}

// NewViper returns a viper instance with defaults and environment
// overrides configured.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Default returns the default configuration.
func Default() *Config {
	cfg, err := FromViper(NewViper())
	if err != nil {
		panic(fmt.Sprintf("invalid default configuration: %v", err))
	}
	return cfg
}

// Load reads the configuration file at path, if path is not empty, and
// returns the resulting configuration.
func Load(path string) (*Config, error) {
	v := NewViper()
	if err := ReadFile(v, path); err != nil {
		return nil, err
	}
	return FromViper(v)
}

// ReadFile reads the configuration file at path into v. It does
// nothing if path is empty.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	return nil
}

// FromViper decodes and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid value in c.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "svg", "png":
	default:
		return fmt.Errorf("%w: output.format must be svg or png, got %q", ErrInvalid, c.Output.Format)
	}
	if c.Output.Width <= 0 || c.Output.Height <= 0 {
		return fmt.Errorf("%w: output size must be positive, got %dx%d", ErrInvalid, c.Output.Width, c.Output.Height)
	}
	if err := c.X.Validate(); err != nil {
		return fmt.Errorf("x: %w", err)
	}
	if err := c.Y.Validate(); err != nil {
		return fmt.Errorf("y: %w", err)
	}
	return nil
}

// Validate reports whether a names known scale types and modes.
func (a AxisConfig) Validate() error {
	if _, err := chart.ParseScaleType(a.Scale); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	for _, m := range []string{a.MinMode, a.MaxMode} {
		if _, err := chart.ParseMode(m); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}

// Apply configures ax from a.
func (a AxisConfig) Apply(ax *chart.Axis) error {
	t, err := chart.ParseScaleType(a.Scale)
	if err != nil {
		return err
	}
	minMode, err := chart.ParseMode(a.MinMode)
	if err != nil {
		return err
	}
	maxMode, err := chart.ParseMode(a.MaxMode)
	if err != nil {
		return err
	}
	ax.SetScaleType(t)
	ax.SetMinMode(minMode)
	ax.SetMaxMode(maxMode)
	ax.SetMin(orNaN(a.Min))
	ax.SetMax(orNaN(a.Max))
	if a.Ticks > 0 {
		ax.SetTickCount(a.Ticks)
	}
	ax.SetPadding(a.Padding, a.OuterPadding)
	ax.SetDistinct(a.Distinct)
	return nil
}

func orNaN(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}

// Merge returns a with the settings in kv applied on top. Keys use the
// dataset spelling, such as "min-mode" or "outer-padding"; "mode" sets
// both bound modes.
func (a AxisConfig) Merge(kv map[string]string) (AxisConfig, error) {
	float := func(k, s string) (float64, error) {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", ErrInvalid, k, err)
		}
		return x, nil
	}
	for k, s := range kv {
		switch strings.ReplaceAll(k, "-", "_") {
		case "scale":
			a.Scale = s
		case "mode":
			a.MinMode, a.MaxMode = s, s
		case "min_mode":
			a.MinMode = s
		case "max_mode":
			a.MaxMode = s
		case "min":
			x, err := float(k, s)
			if err != nil {
				return a, err
			}
			a.Min = &x
		case "max":
			x, err := float(k, s)
			if err != nil {
				return a, err
			}
			a.Max = &x
		case "ticks":
			n, err := strconv.Atoi(s)
			if err != nil {
				return a, fmt.Errorf("%w: %s: %w", ErrInvalid, k, err)
			}
			a.Ticks = n
		case "padding":
			x, err := float(k, s)
			if err != nil {
				return a, err
			}
			a.Padding = x
		case "outer_padding":
			x, err := float(k, s)
			if err != nil {
				return a, err
			}
			a.OuterPadding = x
		case "distinct":
			b, err := strconv.ParseBool(s)
			if err != nil {
				return a, fmt.Errorf("%w: %s: %w", ErrInvalid, k, err)
			}
			a.Distinct = b
		default:
			return a, fmt.Errorf("%w: unknown axis key %q", ErrInvalid, k)
		}
	}
	return a, a.Validate()
}

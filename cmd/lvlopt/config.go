// SPDX-License-Identifier: MIT
// Package: lvlopt/cmd/lvlopt
//
// config.go — application configuration and logger setup.
//
// Config policy:
//   • Defaults first, optional YAML file second, LVLOPT_* environment
//     variables last; each layer overrides the previous.
//   • Every value is range-screened here, so the solver's option
//     constructors (which panic on bad input) only ever see clean values.
//   • Logs go to stderr; stdout carries the rendered reports.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlopt/simplex"
)

// Config holds all application configuration.
type Config struct {
	Solver SolverConfig `mapstructure:"solver"`
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

// SolverConfig bounds the branch-and-bound search.
type SolverConfig struct {
	TimeLimit time.Duration `mapstructure:"time_limit"`
	Eps       float64       `mapstructure:"eps"`
	MaxNodes  int           `mapstructure:"max_nodes"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig holds report rendering configuration.
type OutputConfig struct {
	Width int `mapstructure:"width"`
}

// LoadConfig loads configuration from defaults, an optional file, and the
// environment.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("solver.time_limit", "30s")
	v.SetDefault("solver.eps", 1e-7)
	v.SetDefault("solver.max_nodes", 100000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("output.width", 80)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var parseErr viper.ConfigParseError
			if errors.As(err, &parseErr) {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
			// A missing file falls back to defaults and environment.
		}
	}

	v.SetEnvPrefix("LVLOPT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Solver.TimeLimit < 0 {
		return fmt.Errorf("solver.time_limit must be non-negative, have %s", c.Solver.TimeLimit)
	}
	if !(c.Solver.Eps > 0) || c.Solver.Eps > 1 {
		return fmt.Errorf("solver.eps must be in (0, 1], have %g", c.Solver.Eps)
	}
	if c.Solver.MaxNodes < 0 {
		return fmt.Errorf("solver.max_nodes must be non-negative, have %d", c.Solver.MaxNodes)
	}
	if c.Output.Width < minReportWidth {
		return fmt.Errorf("output.width must be at least %d, have %d", minReportWidth, c.Output.Width)
	}

	return nil
}

// SolverOptions translates the screened config into solver options.
func (c *Config) SolverOptions() []simplex.Option {
	return []simplex.Option{
		simplex.WithEps(c.Solver.Eps),
		simplex.WithTimeLimit(c.Solver.TimeLimit),
		simplex.WithMaxNodes(c.Solver.MaxNodes),
	}
}

// SetupLogger creates a logger with the configured level and format.
func SetupLogger(cfg *Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Log.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

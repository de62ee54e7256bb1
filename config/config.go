// SPDX-License-Identifier: MIT
// Package config holds the runtime configuration of the spectral command
// (viper: defaults, optional file, SPECTRAL_* environment overrides) and
// the YAML experiment grid format.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/katalvlaran/spectral/logging"
	"github.com/katalvlaran/spectral/matrix"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides: log.level is read from
// SPECTRAL_LOG_LEVEL.
const EnvPrefix = "SPECTRAL"

// Keys.
const (
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"
	KeyOutputDir       = "output.dir"
	KeyOutputSQLite    = "output.sqlite"
	KeyRunWorkers      = "run.workers"
	KeyRunSamples      = "run.samples"
	KeyRunSeed         = "run.seed"
	KeySolverKind      = "solver.kind"
	KeySolverTolerance = "solver.tolerance"
	KeySolverMaxIter   = "solver.max_iterations"
	KeyMetricsFile     = "metrics.file"
)

// Config wraps a viper instance with typed getters.
type Config struct {
	v *viper.Viper
}

// New returns a Config with defaults and environment overrides enabled.
func New() *Config {
	v := viper.New()

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, logging.FormatConsole)

	v.SetDefault(KeyOutputDir, "data")
	v.SetDefault(KeyOutputSQLite, "")

	v.SetDefault(KeyRunWorkers, runtime.NumCPU())
	v.SetDefault(KeyRunSamples, 10)
	v.SetDefault(KeyRunSeed, 0)

	v.SetDefault(KeySolverKind, "gonum")
	v.SetDefault(KeySolverTolerance, matrix.DefaultJacobiTol)
	v.SetDefault(KeySolverMaxIter, 0)

	v.SetDefault(KeyMetricsFile, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile merges a config file (any format viper understands) over the
// defaults.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}

// Set overrides a key, typically from a command-line flag.
func (c *Config) Set(key string, value any) { c.v.Set(key, value) }

func (c *Config) LogLevel() string  { return c.v.GetString(KeyLogLevel) }
func (c *Config) LogFormat() string { return c.v.GetString(KeyLogFormat) }

func (c *Config) OutputDir() string  { return c.v.GetString(KeyOutputDir) }
func (c *Config) SQLitePath() string { return c.v.GetString(KeyOutputSQLite) }

func (c *Config) Workers() int             { return c.v.GetInt(KeyRunWorkers) }
func (c *Config) Samples() int             { return c.v.GetInt(KeyRunSamples) }
func (c *Config) Seed() int64              { return c.v.GetInt64(KeyRunSeed) }
func (c *Config) SolverKind() string       { return c.v.GetString(KeySolverKind) }
func (c *Config) SolverTolerance() float64 { return c.v.GetFloat64(KeySolverTolerance) }
func (c *Config) SolverMaxIter() int       { return c.v.GetInt(KeySolverMaxIter) }

func (c *Config) MetricsFile() string { return c.v.GetString(KeyMetricsFile) }

// Solver builds the configured eigen solver.
func (c *Config) Solver() (matrix.Solver, error) {
	return matrix.NewSolver(c.SolverKind(), c.SolverTolerance(), c.SolverMaxIter())
}

// CreateLogger builds the configured logger on stderr.
func (c *Config) CreateLogger() zerolog.Logger {
	return logging.New(c.LogLevel(), c.LogFormat(), nil)
}

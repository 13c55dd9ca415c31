// SPDX-License-Identifier: MIT

// Package config reads roadsim settings from the environment, optionally
// seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/roadsim/lrta"
	"github.com/katalvlaran/roadsim/simulate"
	"github.com/katalvlaran/roadsim/traffic"
)

// Environment keys.
const (
	KeyData       = "ROADSIM_DATA"
	KeyDays       = "ROADSIM_DAYS"
	KeySeed       = "ROADSIM_SEED"
	KeyPCorrect   = "ROADSIM_P_CORRECT"
	KeyPLower     = "ROADSIM_P_LOWER"
	KeyPHigher    = "ROADSIM_P_HIGHER"
	KeyMaxSteps   = "ROADSIM_MAX_STEPS"
	KeyLogLevel   = "ROADSIM_LOG_LEVEL"
	KeyFormat     = "ROADSIM_FORMAT"
	KeyAlgorithms = "ROADSIM_ALGORITHMS"
	KeySelection  = "ROADSIM_SELECTION"
)

var (
	ErrBadNumber   = errors.New("config: not a number")
	ErrBadDays     = errors.New("config: days must be non-negative")
	ErrBadMaxSteps = errors.New("config: max steps must be non-negative")
	ErrBadFormat   = errors.New("config: format must be text, yaml or json")
	ErrBadLevel    = errors.New("config: unknown log level")
	ErrBadPolicy   = errors.New("config: selection must be estimate or lookahead")

	// ErrBadProbabilities is traffic.ErrBadProbabilities.
	ErrBadProbabilities = traffic.ErrBadProbabilities
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Config is the resolved run configuration.
type Config struct {
	Data       string // scenario file; empty means none was given
	Days       int    // 0 means every day of the scenario
	Seed       int64
	Probs      traffic.Probabilities
	MaxSteps   int // 0 keeps the agent's default
	LogLevel   zerolog.Level
	Format     string
	Algorithms []simulate.Algorithm
	Selection  lrta.Selection
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Seed:       1,
		Probs:      traffic.DefaultProbabilities(),
		LogLevel:   zerolog.InfoLevel,
		Format:     FormatText,
		Algorithms: simulate.AllAlgorithms(),
		Selection:  lrta.Estimate,
	}
}

// Load reads files into the process environment without overriding variables
// that are already set, then resolves the configuration from the environment.
// With no files it tries ".env". Missing files are not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: %s: %w", f, err)
		}
	}

	return FromEnv()
}

// FromEnv resolves the configuration from the process environment.
func FromEnv() (Config, error) {
	c := Default()
	var err error

	c.Data = getEnv(KeyData, "")
	c.Format = strings.ToLower(getEnv(KeyFormat, c.Format))
	if c.Days, err = getEnvInt(KeyDays, c.Days); err != nil {
		return Config{}, err
	}
	if c.Seed, err = getEnvInt64(KeySeed, c.Seed); err != nil {
		return Config{}, err
	}
	if c.MaxSteps, err = getEnvInt(KeyMaxSteps, c.MaxSteps); err != nil {
		return Config{}, err
	}
	if c.Probs.Correct, err = getEnvFloat(KeyPCorrect, c.Probs.Correct); err != nil {
		return Config{}, err
	}
	if c.Probs.Lower, err = getEnvFloat(KeyPLower, c.Probs.Lower); err != nil {
		return Config{}, err
	}
	if c.Probs.Higher, err = getEnvFloat(KeyPHigher, c.Probs.Higher); err != nil {
		return Config{}, err
	}
	if lvl := getEnv(KeyLogLevel, ""); lvl != "" {
		if c.LogLevel, err = ParseLevel(lvl); err != nil {
			return Config{}, err
		}
	}
	if algs := getEnv(KeyAlgorithms, ""); algs != "" {
		if c.Algorithms, err = simulate.ParseAlgorithms(algs); err != nil {
			return Config{}, err
		}
	}
	if sel := getEnv(KeySelection, ""); sel != "" {
		if c.Selection, err = ParseSelection(sel); err != nil {
			return Config{}, err
		}
	}

	return c, c.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Days < 0 {
		return fmt.Errorf("%w: %d", ErrBadDays, c.Days)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("%w: %d", ErrBadMaxSteps, c.MaxSteps)
	}
	if c.Format != FormatText && c.Format != FormatYAML && c.Format != FormatJSON {
		return fmt.Errorf("%w: %q", ErrBadFormat, c.Format)
	}
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("%w: none selected", simulate.ErrUnknownAlgorithm)
	}

	return c.Probs.Validate()
}

// ParseLevel parses a zerolog level name such as "debug" or "warn".
func ParseLevel(s string) (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrBadLevel, s)
	}

	return lvl, nil
}

// ParseSelection parses an agent policy name: "estimate" or "lookahead".
func ParseSelection(s string) (lrta.Selection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case lrta.Estimate.String():
		return lrta.Estimate, nil
	case lrta.Lookahead.String():
		return lrta.Lookahead, nil
	default:
		return lrta.Estimate, fmt.Errorf("%w: %q", ErrBadPolicy, s)
	}
}

// SimulateOptions translates c into simulator options.
func (c Config) SimulateOptions() []simulate.Option {
	opts := []simulate.Option{
		simulate.WithSeed(c.Seed),
		simulate.WithProbabilities(c.Probs),
		simulate.WithAlgorithms(c.Algorithms...),
		simulate.WithSelection(c.Selection),
	}
	if c.Days > 0 {
		opts = append(opts, simulate.WithDays(c.Days))
	}
	if c.MaxSteps > 0 {
		opts = append(opts, simulate.WithMaxSteps(c.MaxSteps))
	}

	return opts
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}

	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrBadNumber, key, v)
	}

	return n, nil
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrBadNumber, key, v)
	}

	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrBadNumber, key, v)
	}

	return f, nil
}

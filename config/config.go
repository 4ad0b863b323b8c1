// SPDX-License-Identifier: MIT

// Package config loads lvpca CLI defaults from YAML.
//
// The file lives at $XDG_CONFIG_HOME/lvpca/config.yaml (defaults to
// ~/.config/lvpca/config.yaml). A missing file yields Default(); command-line
// flags override whatever the file sets.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lvpca/internal/logging"
	"github.com/katalvlaran/lvpca/pca"
	"gopkg.in/yaml.v3"
)

// Scree holds the default scree-plot canvas size in centimetres.
type Scree struct {
	WidthCM  float64 `yaml:"width_cm,omitempty"`
	HeightCM float64 `yaml:"height_cm,omitempty"`
}

// Config holds engine and CLI defaults.
type Config struct {
	Components int     `yaml:"components,omitempty"`
	Solver     string  `yaml:"solver,omitempty"`
	MeanPolicy string  `yaml:"mean_policy,omitempty"`
	Tolerance  float64 `yaml:"tolerance,omitempty"`
	MaxIter    int     `yaml:"max_iter,omitempty"`
	LogLevel   string  `yaml:"log_level,omitempty"`
	Scree      Scree   `yaml:"scree,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Components: 2,
		Solver:     pca.DefaultSolver.String(),
		MeanPolicy: pca.DefaultMeanPolicy.String(),
		Tolerance:  pca.DefaultTolerance,
		MaxIter:    pca.DefaultMaxIter,
		LogLevel:   logging.LevelWarn,
		Scree:      Scree{WidthCM: 12, HeightCM: 8},
	}
}

// Path returns the config file location. It respects XDG_CONFIG_HOME,
// falling back to ~/.config/lvpca/config.yaml.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".config", "lvpca", "config.yaml")
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "lvpca", "config.yaml")
}

// Load reads path (Path() when empty) over Default(). A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating directories as needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate rejects values the engine option constructors would panic on.
func (c *Config) Validate() error {
	if c.Components < 0 {
		return fmt.Errorf("components must be >= 0, got %d", c.Components)
	}
	if _, err := pca.ParseSolver(c.Solver); err != nil {
		return err
	}
	if _, err := pca.ParseMeanPolicy(c.MeanPolicy); err != nil {
		return err
	}
	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be finite and > 0, got %g", c.Tolerance)
	}
	if c.MaxIter < 0 {
		return fmt.Errorf("max_iter must be >= 0, got %d", c.MaxIter)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Scree.WidthCM <= 0 || c.Scree.HeightCM <= 0 {
		return fmt.Errorf("scree size must be positive, got %gx%g cm", c.Scree.WidthCM, c.Scree.HeightCM)
	}
	return nil
}

// Options translates the config into engine options.
func (c *Config) Options() ([]pca.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	solver, _ := pca.ParseSolver(c.Solver)
	policy, _ := pca.ParseMeanPolicy(c.MeanPolicy)

	return []pca.Option{
		pca.WithSolver(solver),
		pca.WithMeanPolicy(policy),
		pca.WithTolerance(c.Tolerance),
		pca.WithMaxIter(c.MaxIter),
	}, nil
}

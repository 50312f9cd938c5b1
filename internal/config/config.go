// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package config

import (
	"os"

	"github.com/2dChan/lds/internal/seqs"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultKind   = "sphere"
	DefaultCount  = 1000
	DefaultFormat = "csv"
	DefaultWidth  = 800
	DefaultHeight = 800
	DefaultRadius = 2
	DefaultLevel  = "INFO"
)

var formats = map[string]bool{"csv": true, "json": true}

var levels = map[string]bool{"DEBUG": true, "INFO": true, "WARNING": true, "ERROR": true}

type Config struct {
	Kind   string    `yaml:"kind"`
	Bases  []uint64  `yaml:"bases"`
	Count  int       `yaml:"count"`
	Seed   uint64    `yaml:"seed"`
	Format string    `yaml:"format"`
	Output string    `yaml:"output"`
	SVG    SVGConfig `yaml:"svg"`
	Log    LogConfig `yaml:"log"`
}

type SVGConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Radius int `yaml:"radius"`
}

type LogConfig struct {
	Type  string `yaml:"type"`
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Kind:   DefaultKind,
		Count:  DefaultCount,
		Format: DefaultFormat,
		SVG: SVGConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Radius: DefaultRadius,
		},
		Log: LogConfig{
			Type:  "stderr",
			Level: DefaultLevel,
		},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "write config")
}

// SeqKind returns the parsed sequence kind.
func (c *Config) SeqKind() (seqs.Kind, error) {
	return seqs.ParseKind(c.Kind)
}

func (c *Config) Validate() error {
	kind, err := c.SeqKind()
	if err != nil {
		return err
	}
	if len(c.Bases) > 0 {
		if err := seqs.Validate(kind, c.Bases); err != nil {
			return errors.Wrap(err, "bases")
		}
	}
	if c.Count < 0 {
		return errors.Errorf("count must not be negative, got %d", c.Count)
	}
	if !formats[c.Format] {
		return errors.Errorf("unknown format %q", c.Format)
	}
	if c.SVG.Width <= 0 || c.SVG.Height <= 0 {
		return errors.Errorf("svg size must be positive, got %dx%d", c.SVG.Width, c.SVG.Height)
	}
	if !levels[c.Log.Level] {
		return errors.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}

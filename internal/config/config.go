// Package config loads and saves animation run configuration.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBodies    = 300
	DefaultGrid      = 64
	DefaultDims      = 2
	DefaultDt        = 0.05
	DefaultG         = 1.0
	DefaultSoftening = 1.0
	DefaultFrames    = 50
	DefaultSteps     = 1
	DefaultInterval  = 200
	DefaultFigSize   = 320
)

type Config struct {
	Model ModelConfig `yaml:"model"`
	Anim  AnimConfig  `yaml:"anim"`
}

type ModelConfig struct {
	Bodies    int     `yaml:"bodies"`
	Grid      int     `yaml:"grid"`
	Dims      int     `yaml:"dims"`
	Dt        float64 `yaml:"dt"`
	G         float64 `yaml:"g"`
	Softening float64 `yaml:"softening"`
	Seed      int64   `yaml:"seed"`
	Init      string  `yaml:"init"`
}

type AnimConfig struct {
	Frames     int    `yaml:"frames"`
	Steps      int    `yaml:"steps"`
	IntervalMs int    `yaml:"interval_ms"`
	Style      string `yaml:"style"`
	Marker     string `yaml:"marker"`
	Colormap   string `yaml:"colormap"`
	Norm       string `yaml:"norm"`
	Title      string `yaml:"title"`
	Show       bool   `yaml:"show"`
	Save       string `yaml:"save"`
	Log        string `yaml:"log"`
	Repeat     bool   `yaml:"repeat"`
	FigWidth   int    `yaml:"fig_width"`
	FigHeight  int    `yaml:"fig_height"`
}

func DefaultConfig() *Config {
	return &Config{
		Model: ModelConfig{
			Bodies:    DefaultBodies,
			Grid:      DefaultGrid,
			Dims:      DefaultDims,
			Dt:        DefaultDt,
			G:         DefaultG,
			Softening: DefaultSoftening,
			Seed:      1,
			Init:      "uniform",
		},
		Anim: AnimConfig{
			Frames:     DefaultFrames,
			Steps:      DefaultSteps,
			IntervalMs: DefaultInterval,
			Style:      "grid",
			Marker:     "o",
			Colormap:   "viridis",
			Norm:       "linear",
			Show:       true,
			FigWidth:   DefaultFigSize,
			FigHeight:  DefaultFigSize,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

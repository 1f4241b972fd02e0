// Package config reads the editor's config.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"trackedit/internal/lookup"
)

const DefaultPath = "config.yaml"

type Window struct {
	Width  int32 `yaml:"width"`
	Height int32 `yaml:"height"`
	FPS    int32 `yaml:"fps"`
}

type Panels struct {
	TreeWidth      int32 `yaml:"tree_width"`
	InspectorWidth int32 `yaml:"inspector_width"`
}

type Config struct {
	Window Window `yaml:"window"`
	Panels Panels `yaml:"panels"`
	// Course is opened at startup unless a path is given on the command line.
	Course string `yaml:"course"`
	// CourseDir is the root folder of the course browser.
	CourseDir string `yaml:"course_dir"`
	// Watch reloads the course when the file changes on disk.
	Watch bool `yaml:"watch"`
	// PointCount is how many points the "Add ... Points" actions insert.
	PointCount int              `yaml:"point_count"`
	Lookup     lookup.Overrides `yaml:"lookup"`
}

func Default() *Config {
	return &Config{
		Window:     Window{Width: 1280, Height: 720, FPS: 60},
		Panels:     Panels{TreeWidth: 260, InspectorWidth: 320},
		Course:     "assets/courses/sample.json",
		CourseDir:  "assets/courses",
		Watch:      true,
		PointCount: 1,
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.PointCount < 1 {
		return fmt.Errorf("point_count %d must be at least 1", c.PointCount)
	}
	if c.Window.FPS <= 0 {
		c.Window.FPS = 60
	}
	return nil
}

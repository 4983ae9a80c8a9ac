package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-easel/easel/pkg/gestures"
)

// SchemaVersion is the config schema this build understands. Files may
// declare any version with the same major.
const SchemaVersion = "v1"

// Config represents the optional easel.yaml configuration.
type Config struct {
	Version  string         `yaml:"version,omitempty"`
	Gestures GesturesConfig `yaml:"gestures"`
	Demo     DemoConfig     `yaml:"demo"`
}

// GesturesConfig tunes gesture classification thresholds. Zero values
// keep the defaults.
type GesturesConfig struct {
	BufferTimeMs        int     `yaml:"buffer_time_ms,omitempty"`
	DoubleClickWindowMs int     `yaml:"double_click_window_ms,omitempty"`
	MaxClickDrift       float64 `yaml:"max_click_drift,omitempty"`
}

// DemoConfig contains demo command settings.
type DemoConfig struct {
	Boxes int `yaml:"boxes,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root     string
	Version  string
	Gestures *gestures.Config
	Boxes    int
}

// LoadOptional reads easel.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "easel.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read easel.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse easel.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads easel.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		version = SchemaVersion
	}
	if !semver.IsValid(version) {
		return nil, fmt.Errorf("easel.yaml: version %q is not a semantic version (want e.g. %q)", version, SchemaVersion)
	}
	if semver.Major(version) != SchemaVersion {
		return nil, fmt.Errorf("easel.yaml: version %s is not supported by this build (supports %s)", version, SchemaVersion)
	}

	g := gestures.NewConfig()
	if cfg.Gestures.BufferTimeMs < 0 || cfg.Gestures.DoubleClickWindowMs < 0 || cfg.Gestures.MaxClickDrift < 0 {
		return nil, fmt.Errorf("easel.yaml: gesture thresholds must not be negative")
	}
	if cfg.Gestures.BufferTimeMs > 0 {
		g.BufferTime = time.Duration(cfg.Gestures.BufferTimeMs) * time.Millisecond
	}
	if cfg.Gestures.DoubleClickWindowMs > 0 {
		g.DoubleClickWindow = time.Duration(cfg.Gestures.DoubleClickWindowMs) * time.Millisecond
	}
	if cfg.Gestures.MaxClickDrift > 0 {
		g.SetMaxClickDrift(cfg.Gestures.MaxClickDrift)
	}

	boxes := cfg.Demo.Boxes
	if boxes <= 0 {
		boxes = 4
	}
	if boxes > 9 {
		boxes = 9
	}

	return &Resolved{
		Root:     dir,
		Version:  version,
		Gestures: g,
		Boxes:    boxes,
	}, nil
}

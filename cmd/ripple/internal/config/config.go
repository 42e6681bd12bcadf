// Package config loads the optional ripple.yaml that configures the display
// and the host loop used by the ripple CLI.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/ripple/pkg/animation"
	"github.com/go-drift/ripple/pkg/errors"
	"github.com/go-drift/ripple/pkg/graphics"
)

// FileName is the name of the configuration file.
const FileName = "ripple.yaml"

// SupportedVersion is the newest configuration format this build reads.
const SupportedVersion = "v1"

// Defaults applied by Resolve.
const (
	DefaultWidth         = 64
	DefaultHeight        = 24
	DefaultDuration      = 300 * time.Millisecond
	DefaultFrameInterval = 16 * time.Millisecond
)

// Config represents the optional ripple.yaml configuration.
type Config struct {
	Version       string          `yaml:"version,omitempty"`
	Display       DisplayConfig   `yaml:"display"`
	Animation     AnimationConfig `yaml:"animation"`
	FrameInterval string          `yaml:"frame_interval,omitempty"`
	Foreground    string          `yaml:"foreground,omitempty"`
	Background    string          `yaml:"background,omitempty"`
}

// DisplayConfig sizes the display in cells.
type DisplayConfig struct {
	Width  uint32 `yaml:"width,omitempty"`
	Height uint32 `yaml:"height,omitempty"`
}

// AnimationConfig describes the animation played on every structural
// update. A duration of "0" or "none" disables it.
type AnimationConfig struct {
	Duration string `yaml:"duration,omitempty"`
	Curve    string `yaml:"curve,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root          string
	Version       string
	Size          graphics.Size
	Animation     *animation.Animation
	FrameInterval time.Duration
	Foreground    graphics.Color
	Background    graphics.Color
}

// LoadOptional reads ripple.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, errors.WithPath("config.Load", errors.KindConfig, path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WithPath("config.Load", errors.KindConfig, path, fmt.Errorf("failed to parse %s: %w", FileName, err))
	}
	return &cfg, nil
}

// Resolve loads ripple.yaml (if present) from dir and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	r, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	r.Root = dir
	return r, nil
}

// Resolve validates the configuration and fills in defaults.
func (c *Config) Resolve() (*Resolved, error) {
	r := &Resolved{
		Version:       SupportedVersion,
		Size:          graphics.Sz(DefaultWidth, DefaultHeight),
		FrameInterval: DefaultFrameInterval,
		Foreground:    graphics.ColorWhite,
		Background:    graphics.ColorBlack,
	}

	if v := strings.TrimSpace(c.Version); v != "" {
		if err := CheckVersion(v); err != nil {
			return nil, err
		}
		r.Version = v
	}

	if c.Display.Width > 0 {
		r.Size.Width = c.Display.Width
	}
	if c.Display.Height > 0 {
		r.Size.Height = c.Display.Height
	}

	a, err := c.Animation.resolve()
	if err != nil {
		return nil, err
	}
	r.Animation = a

	if s := strings.TrimSpace(c.FrameInterval); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d <= 0 {
			return nil, invalid("frame_interval", "a positive duration", s)
		}
		r.FrameInterval = d
	}

	if r.Foreground, err = parseColor("foreground", c.Foreground, r.Foreground); err != nil {
		return nil, err
	}
	if r.Background, err = parseColor("background", c.Background, r.Background); err != nil {
		return nil, err
	}
	return r, nil
}

func (a AnimationConfig) resolve() (*animation.Animation, error) {
	d := DefaultDuration
	switch s := strings.TrimSpace(a.Duration); s {
	case "":
	case "none", "0":
		return nil, nil
	default:
		parsed, err := time.ParseDuration(s)
		if err != nil || parsed < 0 {
			return nil, invalid("animation.duration", "a duration", s)
		}
		if parsed == 0 {
			return nil, nil
		}
		d = parsed
	}

	curve := animation.CurveEaseInOut
	if s := strings.TrimSpace(a.Curve); s != "" {
		c, err := animation.ParseCurve(s)
		if err != nil {
			return nil, invalid("animation.curve", "a curve name", s)
		}
		curve = c
	}
	return &animation.Animation{Duration: d, Curve: curve}, nil
}

// CheckVersion reports whether v is a semantic version this build can read:
// any version with the same major version as SupportedVersion.
func CheckVersion(v string) error {
	if !semver.IsValid(v) {
		return invalid("version", "a semantic version such as v1", v)
	}
	if semver.Major(v) != semver.Major(SupportedVersion) {
		return invalid("version", "major version "+semver.Major(SupportedVersion), v)
	}
	return nil
}

func parseColor(field, s string, fallback graphics.Color) (graphics.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	c, err := graphics.ParseHex(s)
	if err != nil {
		return 0, invalid(field, "a #rrggbb colour", s)
	}
	return c, nil
}

func invalid(field, expected string, got any) error {
	return errors.New("config.Resolve", errors.KindConfig, &errors.ParseError{Field: field, Expected: expected, Got: got})
}

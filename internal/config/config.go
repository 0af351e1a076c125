// Package config loads window attributes and frame settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"zan/internal/core"
)

const (
	DefaultWidth  = 900
	DefaultHeight = 600
	DefaultTitle  = "zan"
)

// Config is the startup configuration of the engine.
type Config struct {
	Window core.Attributes
	// FPSLimit caps the frame rate when vsync is off; 0 means uncapped.
	FPSLimit int
}

// Default returns the configuration used when no file is given.
func Default() Config {
	attr := core.DefaultAttributes(DefaultWidth, DefaultHeight)
	attr.Title = DefaultTitle
	return Config{Window: attr, FPSLimit: DefaultFPSLimit}
}

// RawPosition accepts either a keyword or a mapping:
//
//	position: center
//
// or:
//
//	position:
//	  x: 100
//	  y: 50
type RawPosition struct {
	Set      bool
	Position core.Position
}

func (p *RawPosition) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		switch strings.ToLower(strings.TrimSpace(value.Value)) {
		case "center", "centered", "unspecified", "auto":
			*p = RawPosition{Set: true, Position: core.Unspecified()}
			return nil
		}
		return fmt.Errorf("line %d: position must be \"center\" or a mapping with x and y, got %q", value.Line, value.Value)
	case yaml.MappingNode:
		// Node.Decode does not inherit the outer decoder's KnownFields.
		for i := 0; i+1 < len(value.Content); i += 2 {
			if k := value.Content[i]; k.Value != "x" && k.Value != "y" {
				return fmt.Errorf("line %d: unknown position key %q", k.Line, k.Value)
			}
		}
		var xy struct {
			X *int `yaml:"x"`
			Y *int `yaml:"y"`
		}
		if err := value.Decode(&xy); err != nil {
			return err
		}
		if xy.X == nil || xy.Y == nil {
			return fmt.Errorf("line %d: position needs both x and y", value.Line)
		}
		*p = RawPosition{Set: true, Position: core.At(*xy.X, *xy.Y)}
		return nil
	default:
		return fmt.Errorf("line %d: position must be \"center\" or a mapping with x and y", value.Line)
	}
}

type RawContext struct {
	Major *int `yaml:"major"`
	Minor *int `yaml:"minor"`
}

// RawWindow mirrors core.Attributes with every field optional, so a file
// only overrides what it mentions.
type RawWindow struct {
	Title    *string     `yaml:"title"`
	Icon     *string     `yaml:"icon"`
	Position RawPosition `yaml:"position"`
	Width    *int        `yaml:"width"`
	Height   *int        `yaml:"height"`

	Fullscreen  *bool `yaml:"fullscreen"`
	VSync       *bool `yaml:"vsync"`
	Resizable   *bool `yaml:"resizable"`
	Decorated   *bool `yaml:"decorated"`
	Focused     *bool `yaml:"focused"`
	AutoIconify *bool `yaml:"autoiconify"`
	Floating    *bool `yaml:"floating"`
	Maximized   *bool `yaml:"maximized"`
	Minimized   *bool `yaml:"minimized"`
	Visible     *bool `yaml:"visible"`

	Samples *int `yaml:"samples"`

	Context           RawContext `yaml:"context"`
	CoreProfile       *bool      `yaml:"core_profile"`
	ForwardCompatible *bool      `yaml:"forward_compatible"`
}

type RawFrame struct {
	FPSLimit *int `yaml:"fps_limit"`
}

type RawConfig struct {
	Window RawWindow `yaml:"window"`
	Frame  RawFrame  `yaml:"frame"`
}

// Load reads path and overlays it on Default. An empty path returns the
// defaults. The result is validated.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse overlays a YAML document on Default and validates the result.
func Parse(data []byte) (Config, error) {
	var raw RawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse yaml: %w", err)
	}

	cfg := Default()
	raw.Window.apply(&cfg.Window)
	setInt(&cfg.FPSLimit, raw.Frame.FPSLimit)
	if err := cfg.Window.Validate(); err != nil {
		return Config{}, err
	}
	if cfg.FPSLimit < 0 {
		return Config{}, fmt.Errorf("frame.fps_limit must be >= 0, got %d", cfg.FPSLimit)
	}
	return cfg, nil
}

func (r RawWindow) apply(a *core.Attributes) {
	setString(&a.Title, r.Title)
	setString(&a.Icon, r.Icon)
	if r.Position.Set {
		a.Position = r.Position.Position
	}
	setInt(&a.Width, r.Width)
	setInt(&a.Height, r.Height)

	setBool(&a.Fullscreen, r.Fullscreen)
	setBool(&a.VSync, r.VSync)
	setBool(&a.Resizable, r.Resizable)
	setBool(&a.Decorated, r.Decorated)
	setBool(&a.Focused, r.Focused)
	setBool(&a.AutoIconify, r.AutoIconify)
	setBool(&a.Floating, r.Floating)
	setBool(&a.Maximized, r.Maximized)
	setBool(&a.Minimized, r.Minimized)
	setBool(&a.Visible, r.Visible)

	setInt(&a.Samples, r.Samples)

	setInt(&a.Context.Major, r.Context.Major)
	setInt(&a.Context.Minor, r.Context.Minor)
	setBool(&a.CoreProfile, r.CoreProfile)
	setBool(&a.ForwardCompatible, r.ForwardCompatible)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

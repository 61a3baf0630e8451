// Package config loads, validates, watches and writes the swipenav configuration.
package config

import (
	"time"

	"github.com/bnema/swipenav/internal/domain/entity"
)

// Config represents the complete configuration for swipenav.
type Config struct {
	// Gesture controls which directions can commit and how far a drag must go.
	Gesture GestureConfig `mapstructure:"gesture" toml:"gesture" json:"gesture" jsonschema:"title=Gesture"`
	// Panel controls the geometry and colors of the side panels.
	Panel PanelConfig `mapstructure:"panel" toml:"panel" json:"panel" jsonschema:"title=Panel"`
	// Navigation controls what happens after a committed swipe.
	Navigation NavigationConfig `mapstructure:"navigation" toml:"navigation" json:"navigation" jsonschema:"title=Navigation"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging" jsonschema:"title=Logging"`
}

// GestureConfig holds the gesture controller settings.
type GestureConfig struct {
	EnableBack    bool `mapstructure:"enable_back" toml:"enable_back" json:"enable_back" jsonschema:"default=true"`
	EnableForward bool `mapstructure:"enable_forward" toml:"enable_forward" json:"enable_forward" jsonschema:"default=true"`
	// MaxSwipeDistance is the commit threshold in pixels. 0 uses a quarter of the viewport width.
	MaxSwipeDistance float64 `mapstructure:"max_swipe_distance" toml:"max_swipe_distance" json:"max_swipe_distance" jsonschema:"minimum=0,default=0"`
	// MaxRestDurationMs is the spring-back duration of a fully progressed drag.
	MaxRestDurationMs int `mapstructure:"max_rest_duration_ms" toml:"max_rest_duration_ms" json:"max_rest_duration_ms" jsonschema:"minimum=0,default=250"`
}

// MaxRestDuration returns MaxRestDurationMs as a duration.
func (g GestureConfig) MaxRestDuration() time.Duration {
	return time.Duration(g.MaxRestDurationMs) * time.Millisecond
}

// PanelConfig holds the panel geometry and style.
type PanelConfig struct {
	Width         float64 `mapstructure:"width" toml:"width" json:"width" jsonschema:"exclusiveMinimum=0,default=25"`
	Height        float64 `mapstructure:"height" toml:"height" json:"height" jsonschema:"exclusiveMinimum=0,default=250"`
	MinArrowWidth float64 `mapstructure:"min_arrow_width" toml:"min_arrow_width" json:"min_arrow_width" jsonschema:"minimum=0,default=11"`

	FillColor      string  `mapstructure:"fill_color" toml:"fill_color" json:"fill_color" jsonschema:"pattern=^#[0-9a-fA-F]{6}$,default=#000000"`
	FillOpacity    float64 `mapstructure:"fill_opacity" toml:"fill_opacity" json:"fill_opacity" jsonschema:"minimum=0,maximum=1,default=0.7"`
	ArrowColor     string  `mapstructure:"arrow_color" toml:"arrow_color" json:"arrow_color" jsonschema:"pattern=^#[0-9a-fA-F]{6}$,default=#ffffff"`
	ArrowLineWidth float64 `mapstructure:"arrow_line_width" toml:"arrow_line_width" json:"arrow_line_width" jsonschema:"exclusiveMinimum=0,default=1.5"`
}

// Style converts the color settings. Invalid colors fall back to the defaults;
// validateConfig rejects them before a Config is published.
func (p PanelConfig) Style() entity.PanelStyle {
	style := entity.DefaultPanelStyle()
	if c, err := entity.ParseHexColor(p.FillColor); err == nil {
		style.Fill = c
	}
	if c, err := entity.ParseHexColor(p.ArrowColor); err == nil {
		style.Arrow = c
	}
	style.FillOpacity = p.FillOpacity
	if p.ArrowLineWidth > 0 {
		style.ArrowLineWidth = p.ArrowLineWidth
	}
	return style
}

// NavigationConfig holds post-commit behavior.
type NavigationConfig struct {
	// SameLocationCheckMs is the delay before comparing locations after a back swipe.
	SameLocationCheckMs int `mapstructure:"same_location_check_ms" toml:"same_location_check_ms" json:"same_location_check_ms" jsonschema:"minimum=0,default=200"`
}

// SameLocationDelay returns SameLocationCheckMs as a duration.
func (n NavigationConfig) SameLocationDelay() time.Duration {
	return time.Duration(n.SameLocationCheckMs) * time.Millisecond
}

// LogFormat selects the log encoder.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string    `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=warning,enum=error,enum=disabled,enum=off,default=info"`
	Format LogFormat `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,enum=text,default=console"`
}

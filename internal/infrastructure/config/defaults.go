package config

import (
	"github.com/bnema/swipenav/internal/domain/gesture"
	"github.com/bnema/swipenav/internal/domain/panel"
)

// Default configuration constants
const (
	defaultFillColor      = "#000000"
	defaultFillOpacity    = 0.7
	defaultArrowColor     = "#ffffff"
	defaultArrowLineWidth = 1.5

	defaultSameLocationCheckMs = 200

	defaultLogLevel = "info"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Gesture: GestureConfig{
			EnableBack:        true,
			EnableForward:     true,
			MaxSwipeDistance:  0,
			MaxRestDurationMs: int(gesture.DefaultMaxRestDuration.Milliseconds()),
		},
		Panel: PanelConfig{
			Width:          panel.DefaultWidth,
			Height:         panel.DefaultHeight,
			MinArrowWidth:  panel.DefaultMinArrowWidth,
			FillColor:      defaultFillColor,
			FillOpacity:    defaultFillOpacity,
			ArrowColor:     defaultArrowColor,
			ArrowLineWidth: defaultArrowLineWidth,
		},
		Navigation: NavigationConfig{
			SameLocationCheckMs: defaultSameLocationCheckMs,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: LogFormatConsole,
		},
	}
}

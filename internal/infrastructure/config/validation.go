package config

import (
	"fmt"
	"strings"

	domainvalidation "github.com/bnema/swipenav/internal/domain/validation"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateGesture(config)...)
	validationErrors = append(validationErrors, validatePanel(config)...)
	validationErrors = append(validationErrors, validateNavigation(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

// Validate checks cfg the same way Load does.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	return validateConfig(cfg)
}

func validateGesture(config *Config) []string {
	var validationErrors []string
	validationErrors = append(validationErrors,
		domainvalidation.ValidateNonNegative("gesture.max_swipe_distance", config.Gesture.MaxSwipeDistance)...)
	if config.Gesture.MaxRestDurationMs < 0 {
		validationErrors = append(validationErrors, "gesture.max_rest_duration_ms must be non-negative")
	}
	return validationErrors
}

func validatePanel(config *Config) []string {
	var validationErrors []string
	validationErrors = append(validationErrors, domainvalidation.ValidatePositive("panel.width", config.Panel.Width)...)
	validationErrors = append(validationErrors, domainvalidation.ValidatePositive("panel.height", config.Panel.Height)...)
	validationErrors = append(validationErrors,
		domainvalidation.ValidateNonNegative("panel.min_arrow_width", config.Panel.MinArrowWidth)...)
	validationErrors = append(validationErrors, domainvalidation.ValidateHexColor("panel.fill_color", config.Panel.FillColor)...)
	validationErrors = append(validationErrors,
		domainvalidation.ValidateUnitInterval("panel.fill_opacity", config.Panel.FillOpacity)...)
	validationErrors = append(validationErrors, domainvalidation.ValidateHexColor("panel.arrow_color", config.Panel.ArrowColor)...)
	validationErrors = append(validationErrors,
		domainvalidation.ValidatePositive("panel.arrow_line_width", config.Panel.ArrowLineWidth)...)
	return validationErrors
}

func validateNavigation(config *Config) []string {
	if config.Navigation.SameLocationCheckMs < 0 {
		return []string{"navigation.same_location_check_ms must be non-negative"}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: console, json (got: %s)",
			config.Logging.Format,
		))
	}
	return validationErrors
}

package validation

import (
	"regexp"

	"github.com/bnema/swipenav/internal/domain/entity"
)

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ValidateHexColor reports field when value is not a #RRGGBB color.
func ValidateHexColor(field, value string) []string {
	if !IsHexColor(value) {
		return []string{field + " must be a hex color like #RRGGBB"}
	}
	if _, err := entity.ParseHexColor(value); err != nil {
		return []string{field + ": " + err.Error()}
	}
	return nil
}

// ValidateUnitInterval reports field when value is outside [0,1].
func ValidateUnitInterval(field string, value float64) []string {
	if !(value >= 0 && value <= 1) {
		return []string{field + " must be between 0 and 1"}
	}
	return nil
}

// ValidatePositive reports field when value is not strictly positive.
func ValidatePositive(field string, value float64) []string {
	if !(value > 0) {
		return []string{field + " must be positive"}
	}
	return nil
}

// ValidateNonNegative reports field when value is negative.
func ValidateNonNegative(field string, value float64) []string {
	if !(value >= 0) {
		return []string{field + " must be non-negative"}
	}
	return nil
}

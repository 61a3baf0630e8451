package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "negative max swipe distance", mutate: func(c *Config) { c.Gesture.MaxSwipeDistance = -1 }, wantErr: "gesture.max_swipe_distance"},
		{name: "negative rest duration", mutate: func(c *Config) { c.Gesture.MaxRestDurationMs = -5 }, wantErr: "gesture.max_rest_duration_ms"},
		{name: "zero panel width", mutate: func(c *Config) { c.Panel.Width = 0 }, wantErr: "panel.width"},
		{name: "bad fill color", mutate: func(c *Config) { c.Panel.FillColor = "black" }, wantErr: "panel.fill_color"},
		{name: "opacity above one", mutate: func(c *Config) { c.Panel.FillOpacity = 1.5 }, wantErr: "panel.fill_opacity"},
		{name: "negative same location delay", mutate: func(c *Config) { c.Navigation.SameLocationCheckMs = -1 }, wantErr: "navigation.same_location_check_ms"},
		{name: "unknown log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "unknown log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	assert.Error(t, Validate(nil))
}

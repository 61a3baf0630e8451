package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager. An empty configFile
// searches the XDG config directory and the working directory for config.toml.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config") // Name without extension
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".") // Current directory for development
	}
	v.SetConfigType("toml")

	// SWIPENAV_GESTURE_ENABLE_BACK, SWIPENAV_PANEL_WIDTH, ...
	v.SetEnvPrefix("SWIPENAV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "SWIPENAV_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SWIPENAV_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SWIPENAV_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SWIPENAV_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is not an error; defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}
	var configFileNotFoundError viper.ConfigFileNotFoundError
	if errors.As(err, &configFileNotFoundError) {
		return nil
	}
	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		configDir, _ := GetConfigDir()
		configFile = filepath.Join(configDir, "config.toml")
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		configFile := m.viper.ConfigFileUsed()
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			configFile,
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}

	switch strings.ToLower(string(config.Logging.Format)) {
	case "", string(LogFormatConsole), "text":
		config.Logging.Format = LogFormatConsole
	case string(LogFormatJSON):
		config.Logging.Format = LogFormatJSON
	default:
		config.Logging.Format = LogFormatConsole
	}

	config.Panel.FillColor = strings.TrimSpace(config.Panel.FillColor)
	config.Panel.ArrowColor = strings.TrimSpace(config.Panel.ArrowColor)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
// It is empty when only defaults and environment variables apply.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setGestureDefaults(defaults)
	m.setPanelDefaults(defaults)
	m.setNavigationDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setGestureDefaults(defaults *Config) {
	m.viper.SetDefault("gesture.enable_back", defaults.Gesture.EnableBack)
	m.viper.SetDefault("gesture.enable_forward", defaults.Gesture.EnableForward)
	m.viper.SetDefault("gesture.max_swipe_distance", defaults.Gesture.MaxSwipeDistance)
	m.viper.SetDefault("gesture.max_rest_duration_ms", defaults.Gesture.MaxRestDurationMs)
}

func (m *Manager) setPanelDefaults(defaults *Config) {
	m.viper.SetDefault("panel.width", defaults.Panel.Width)
	m.viper.SetDefault("panel.height", defaults.Panel.Height)
	m.viper.SetDefault("panel.min_arrow_width", defaults.Panel.MinArrowWidth)
	m.viper.SetDefault("panel.fill_color", defaults.Panel.FillColor)
	m.viper.SetDefault("panel.fill_opacity", defaults.Panel.FillOpacity)
	m.viper.SetDefault("panel.arrow_color", defaults.Panel.ArrowColor)
	m.viper.SetDefault("panel.arrow_line_width", defaults.Panel.ArrowLineWidth)
}

func (m *Manager) setNavigationDefaults(defaults *Config) {
	m.viper.SetDefault("navigation.same_location_check_ms", defaults.Navigation.SameLocationCheckMs)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", string(defaults.Logging.Format))
}

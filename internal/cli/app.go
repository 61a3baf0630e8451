// Package cli provides the dependencies shared by swipenav commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bnema/swipenav/internal/cli/styles"
	"github.com/bnema/swipenav/internal/domain/build"
	"github.com/bnema/swipenav/internal/infrastructure/config"
	"github.com/bnema/swipenav/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx context.Context
}

// Options configures NewApp.
type Options struct {
	// ConfigFile overrides the XDG config file location.
	ConfigFile string
	// LogOutput receives log lines. Defaults to stderr.
	LogOutput io.Writer
}

// NewApp loads the configuration and builds the logger.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager(opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	logCfg.Format = string(cfg.Logging.Format)
	logCfg.TimeFormat = "15:04:05"
	logCfg.Output = out
	logger := logging.New(logCfg)

	logger.Debug().
		Str("config_file", mgr.GetConfigFile()).
		Str("level", cfg.Logging.Level).
		Msg("configuration loaded")

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(cfg),
		ctx:     logging.WithContext(context.Background(), logger),
	}, nil
}

// Ctx returns the context carrying the CLI logger.
func (a *App) Ctx() context.Context {
	if a == nil || a.ctx == nil {
		return context.Background()
	}
	return a.ctx
}

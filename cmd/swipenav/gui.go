package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/swipenav/internal/domain/entity"
	"github.com/bnema/swipenav/internal/infrastructure/config"
	"github.com/bnema/swipenav/internal/infrastructure/gtkswipe"
	"github.com/bnema/swipenav/internal/logging"
	"github.com/bnema/swipenav/internal/ui/coordinator"
)

const (
	appID           = "io.github.bnema.swipenav"
	defaultHomepage = "https://example.com"
	defaultWidth    = 1024
	defaultHeight   = 768
)

func runGUI(uri, configPath string) int {
	runtime.LockOSThread()

	mgr, cfg, err := initConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger := logging.NewFromConfigValues(cfg.Logging.Level, string(cfg.Logging.Format))
	ctx := logging.WithContext(context.Background(), logger)
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := gtk.NewApplication(appID, gio.ApplicationNonUnique)
	app.ConnectActivate(func() {
		if err := activate(ctx, app, mgr, uri); err != nil {
			logger.Error().Err(err).Msg("failed to open window")
			app.Quit()
		}
	})

	go func() {
		<-ctx.Done()
		glib.IdleAdd(func() bool {
			app.Quit()
			return false // Don't repeat
		})
	}()

	logger.Info().Str("uri", uri).Str("config", mgr.GetConfigFile()).Msg("starting browser window")
	return app.Run(os.Args[:1])
}

func initConfig(configPath string) (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return mgr, mgr.Get(), nil
}

// activate builds the window: a web view inside an overlay carrying the
// swipe panels.
func activate(ctx context.Context, app *gtk.Application, mgr *config.Manager, uri string) error {
	log := logging.FromContext(ctx)

	win := gtk.NewApplicationWindow(app)
	win.SetTitle("swipenav")
	win.SetDefaultSize(defaultWidth, defaultHeight)

	view := webkit.NewWebView()
	view.SetHExpand(true)
	view.SetVExpand(true)

	overlay := gtk.NewOverlay()
	overlay.SetChild(view)

	swipe, err := gtkswipe.Attach(ctx, overlay, view, mgr.Get())
	if err != nil {
		return fmt.Errorf("attach swipe overlay: %w", err)
	}
	swipe.SetCallbacks(hostCallbacks(log))

	swipe.WatchConfig(mgr)
	if err := mgr.Watch(); err != nil {
		log.Debug().Err(err).Msg("config hot reload disabled")
	}

	view.LoadURI(uri)
	win.SetChild(overlay)
	win.Present()
	return nil
}

// hostCallbacks logs what the overlay does.
func hostCallbacks(log *zerolog.Logger) coordinator.SwipeCallbacks {
	return coordinator.SwipeCallbacks{
		OnCommit: func(side entity.Side) {
			log.Debug().Str("side", side.String()).Msg("swipe committed")
		},
		OnSameLocation: func(uri string) {
			log.Info().Str("uri", uri).Msg("back swipe stayed on the same page")
		},
	}
}

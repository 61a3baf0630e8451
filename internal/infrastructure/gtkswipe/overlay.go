// Package gtkswipe hosts the swipe overlay on a GTK4 overlay above a WebKit web view.
package gtkswipe

import (
	"context"
	"fmt"

	"github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/swipenav/internal/bootstrap"
	"github.com/bnema/swipenav/internal/domain/entity"
	"github.com/bnema/swipenav/internal/infrastructure/config"
	"github.com/bnema/swipenav/internal/logging"
	"github.com/bnema/swipenav/internal/ui/coordinator"
)

// Overlay is the swipe overlay attached to one web view.
type Overlay struct {
	overlay *gtk.Overlay
	swipe   *bootstrap.Swipe
	panels  map[entity.Side]*PanelWidget
	drag    *gtk.GestureDrag
	ctx     context.Context
}

// widgetViewport reads the allocated size of a widget.
type widgetViewport struct {
	widget *gtk.Widget
}

func (v widgetViewport) ViewportSize() entity.Size {
	return entity.Sz(float64(v.widget.Width()), float64(v.widget.Height()))
}

// Attach installs the side panels and the drag gesture on overlay, whose
// child is expected to be view. Must be called on the GTK main thread.
func Attach(ctx context.Context, overlay *gtk.Overlay, view *webkit.WebView, cfg *config.Config) (*Overlay, error) {
	if overlay == nil || view == nil {
		return nil, fmt.Errorf("attach swipe overlay: overlay and web view are required")
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	ctx = logging.WithComponent(ctx, "gtkswipe")
	log := logging.FromContext(ctx)

	o := &Overlay{
		overlay: overlay,
		panels:  make(map[entity.Side]*PanelWidget, len(entity.Sides)),
		ctx:     ctx,
	}
	o.swipe = bootstrap.NewSwipe(ctx, cfg, coordinator.SwipeDeps{
		Navigator:  NewWebViewNavigator(view),
		Viewport:   widgetViewport{widget: gtk.BaseWidget(overlay)},
		FrameClock: NewTickClock(overlay),
		Scheduler:  TimeoutScheduler{},
	})

	renderer := bootstrap.Renderer(cfg)
	for _, side := range entity.Sides {
		p := NewPanelWidget(side, renderer.PanelSize(), cfg.Panel.Style())
		overlay.AddOverlay(p.Widget())
		if err := o.swipe.Coordinator.Attach(side, p); err != nil {
			return nil, err
		}
		o.panels[side] = p
	}

	o.attachDrag()
	log.Debug().Str("style", cfg.Panel.Style().String()).Msg("swipe overlay attached")
	return o, nil
}

// Coordinator returns the coordinator driving the panels.
func (o *Overlay) Coordinator() *coordinator.SwipeCoordinator {
	return o.swipe.Coordinator
}

// SetCallbacks forwards host callbacks to the coordinator.
func (o *Overlay) SetCallbacks(callbacks coordinator.SwipeCallbacks) {
	o.swipe.Coordinator.SetCallbacks(callbacks)
}

// ApplyConfig updates gesture, panel and navigation settings.
// Safe to call from any goroutine; the work runs on the main loop.
func (o *Overlay) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	glib.IdleAdd(func() bool {
		o.swipe.ApplyConfig(o.ctx, cfg)
		size := bootstrap.Renderer(cfg).PanelSize()
		for _, p := range o.panels {
			p.SetSize(size)
			p.SetStyle(cfg.Panel.Style())
		}
		return false // Don't repeat
	})
}

// WatchConfig applies every reload of mgr to the overlay.
func (o *Overlay) WatchConfig(mgr *config.Manager) {
	mgr.OnConfigChange(o.ApplyConfig)
}

func (o *Overlay) attachDrag() {
	log := logging.FromContext(o.ctx)
	coord := o.swipe.Coordinator
	var lastX float64

	handle := func(phase entity.GesturePhase, offsetX float64) {
		if err := coord.HandleGesture(o.ctx, phase, offsetX); err != nil {
			log.Debug().Err(err).Str("phase", phase.String()).Msg("swipe gesture not handled")
		}
	}

	drag := gtk.NewGestureDrag()
	// Capture phase so the web view does not swallow the drag.
	drag.SetPropagationPhase(gtk.PhaseCapture)
	drag.SetTouchOnly(false)

	drag.ConnectDragBegin(func(_, _ float64) {
		lastX = 0
		handle(entity.GestureBegan, 0)
	})
	drag.ConnectDragUpdate(func(offsetX, _ float64) {
		lastX = offsetX
		handle(entity.GestureChanged, offsetX)
	})
	drag.ConnectDragEnd(func(offsetX, _ float64) {
		handle(entity.GestureEnded, offsetX)
	})
	drag.ConnectCancel(func(_ *gdk.EventSequence) {
		handle(entity.GestureCancelled, lastX)
	})

	o.overlay.AddController(drag)
	o.drag = drag
}

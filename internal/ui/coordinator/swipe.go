package coordinator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/swipenav/internal/application/port"
	"github.com/bnema/swipenav/internal/domain/entity"
	"github.com/bnema/swipenav/internal/domain/gesture"
	"github.com/bnema/swipenav/internal/domain/panel"
	"github.com/bnema/swipenav/internal/logging"
	"github.com/bnema/swipenav/internal/ui/animation"
)

// ErrPanelAlreadyAttached is returned when a side gets a second surface.
var ErrPanelAlreadyAttached = errors.New("panel already attached")

// SwipeCallbacks lets the host observe what the overlay does.
// All callbacks run on the UI thread and may be nil.
type SwipeCallbacks struct {
	// OnProgressChanged is called for every immediate panel update.
	OnProgressChanged func(side entity.Side, progress float64)
	// OnAnimatedTransition is called when a panel starts animating toward progress.
	OnAnimatedTransition func(side entity.Side, progress float64, duration time.Duration)
	// OnCommit is called right before the committed navigation is issued.
	OnCommit func(side entity.Side)
	// OnSameLocation is called when a back navigation landed on the same
	// location, ignoring the fragment.
	OnSameLocation func(uri string)
}

// SwipeDeps holds the collaborators of a SwipeCoordinator.
// Renderer defaults to panel.NewCurvedRenderer. FrameClock and Scheduler may
// be nil: animations then snap and the same-location check is skipped.
type SwipeDeps struct {
	Navigator  port.Navigator
	Viewport   port.Viewport
	Renderer   panel.Renderer
	FrameClock port.FrameClock
	Scheduler  port.Scheduler
	Now        func() time.Time
}

// SwipeCoordinator connects drag phases to the gesture controller, renders
// the panels and performs committed navigations. It must only be used from
// the UI thread.
type SwipeCoordinator struct {
	controller *gesture.Controller
	renderer   panel.Renderer
	animator   *animation.Animator[entity.Side]
	navigator  port.Navigator
	viewport   port.Viewport
	frames     port.FrameClock
	scheduler  port.Scheduler
	surfaces   map[entity.Side]port.PanelSurface
	callbacks  SwipeCallbacks

	viewportSize      entity.Size
	sameLocationDelay time.Duration
	cancelCheck       func()
	framesRequested   bool
}

// NewSwipeCoordinator creates a new SwipeCoordinator.
func NewSwipeCoordinator(ctx context.Context, controller *gesture.Controller, deps SwipeDeps) *SwipeCoordinator {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating swipe coordinator")

	renderer := deps.Renderer
	if renderer == nil {
		renderer = panel.NewCurvedRenderer()
	}

	c := &SwipeCoordinator{
		controller:        controller,
		renderer:          renderer,
		navigator:         deps.Navigator,
		viewport:          deps.Viewport,
		frames:            deps.FrameClock,
		scheduler:         deps.Scheduler,
		surfaces:          make(map[entity.Side]port.PanelSurface, len(entity.Sides)),
		sameLocationDelay: DefaultSameLocationDelay,
	}
	c.animator = animation.New(c.present, deps.Now)
	return c
}

// SetCallbacks replaces the host callbacks.
func (c *SwipeCoordinator) SetCallbacks(callbacks SwipeCallbacks) {
	c.callbacks = callbacks
}

// SetSameLocationDelay sets how long to wait before comparing locations
// after a back navigation.
func (c *SwipeCoordinator) SetSameLocationDelay(d time.Duration) {
	if d >= 0 {
		c.sameLocationDelay = d
	}
}

// SetEnableBack toggles back navigation from the next gesture on.
func (c *SwipeCoordinator) SetEnableBack(enabled bool) {
	c.controller.SetEnableBack(enabled)
}

// SetEnableForward toggles forward navigation from the next gesture on.
func (c *SwipeCoordinator) SetEnableForward(enabled bool) {
	c.controller.SetEnableForward(enabled)
}

// SetRenderer swaps the panel style. Outside of a drag the panels are
// redrawn at rest with the new renderer.
func (c *SwipeCoordinator) SetRenderer(renderer panel.Renderer) {
	if renderer == nil {
		return
	}
	c.renderer = renderer
	if !c.controller.Active() {
		c.refreshViewport()
		for side := range c.surfaces {
			c.animator.Apply(side, c.renderer.Render(side, entity.ProgressRest, c.viewportSize), entity.Immediate())
		}
	}
}

// Attach binds the surface that draws one side panel. Each side can be
// attached once; the surface immediately receives the rest geometry.
func (c *SwipeCoordinator) Attach(side entity.Side, surface port.PanelSurface) error {
	if surface == nil {
		return fmt.Errorf("attach %s panel: nil surface", side)
	}
	if _, ok := c.surfaces[side]; ok {
		return fmt.Errorf("attach %s panel: %w", side, ErrPanelAlreadyAttached)
	}
	c.surfaces[side] = surface
	c.refreshViewport()
	c.animator.Apply(side, c.renderer.Render(side, entity.ProgressRest, c.viewportSize), entity.Immediate())
	return nil
}

// Presented returns the paths currently shown for a side.
func (c *SwipeCoordinator) Presented(side entity.Side) entity.PathPair {
	return c.animator.Presented(side)
}

// Animating reports whether any panel animation is in flight.
func (c *SwipeCoordinator) Animating() bool {
	return c.animator.Running()
}

// HandleGesture processes one drag phase with the current horizontal offset.
// An ErrInvalidViewport from Began is returned for reporting, but the session
// still runs with rest progress.
func (c *SwipeCoordinator) HandleGesture(ctx context.Context, phase entity.GesturePhase, offset float64) error {
	log := logging.FromContext(ctx)
	log.Trace().Str("phase", phase.String()).Float64("offset", offset).Msg("swipe gesture")

	switch phase {
	case entity.GestureBegan:
		return c.begin(ctx, offset)
	case entity.GestureChanged:
		return c.update(ctx, offset)
	case entity.GestureEnded:
		return c.finish(ctx, offset, false)
	case entity.GestureCancelled:
		return c.finish(ctx, offset, true)
	default:
		return fmt.Errorf("unknown gesture phase %d", phase)
	}
}

func (c *SwipeCoordinator) begin(ctx context.Context, offset float64) error {
	log := logging.FromContext(ctx)

	c.refreshViewport()
	err := c.controller.BeginSession(offset, c.viewportSize.Width)
	if err != nil {
		log.Warn().Err(err).Str("viewport", c.viewportSize.String()).Msg("swipe session started without a usable viewport")
	}
	if s, ok := c.controller.Session(); ok {
		log.Debug().
			Uint64("gesture_session", s.ID).
			Float64("max_swipe_distance", s.MaxSwipeDistance).
			Bool("enable_back", s.EnableBack).
			Bool("enable_forward", s.EnableForward).
			Msg("swipe session started")
	}

	c.resetPanels(entity.Immediate())
	if err != nil {
		return fmt.Errorf("begin swipe: %w", err)
	}
	return nil
}

func (c *SwipeCoordinator) update(ctx context.Context, offset float64) error {
	progress, err := c.controller.Update(offset)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("swipe update ignored")
		return fmt.Errorf("update swipe: %w", err)
	}

	// The inactive side is forced back to rest in the same update.
	for _, side := range entity.Sides {
		c.apply(entity.NewPanelState(side, progress.Of(side), entity.Immediate()))
	}
	return nil
}

func (c *SwipeCoordinator) finish(ctx context.Context, offset float64, cancelled bool) error {
	log := logging.FromContext(ctx)

	decision, err := c.controller.End(offset)
	c.controller.EndSession()
	if err != nil {
		log.Debug().Err(err).Bool("cancelled", cancelled).Msg("swipe release ignored")
		return fmt.Errorf("end swipe: %w", err)
	}

	log.Debug().Str("decision", decision.String()).Float64("offset", offset).Bool("cancelled", cancelled).Msg("swipe released")

	if side, ok := decision.Side(); ok {
		c.commit(ctx, side)
		return nil
	}
	c.resetPanels(entity.Animated(decision.RestDuration))
	return nil
}

func (c *SwipeCoordinator) resetPanels(mode entity.RenderMode) {
	for _, side := range entity.Sides {
		c.apply(entity.RestState(side, mode))
	}
}

func (c *SwipeCoordinator) apply(state entity.PanelState) {
	if state.Mode.Animated && c.frames == nil {
		state.Mode = entity.Immediate()
	}

	paths := c.renderer.Render(state.Side, state.Progress, c.viewportSize)
	if c.animator.Apply(state.Side, paths, state.Mode) {
		c.requestFrames()
	}

	if state.Mode.Animated {
		if c.callbacks.OnAnimatedTransition != nil {
			c.callbacks.OnAnimatedTransition(state.Side, state.Progress, state.Mode.Duration)
		}
		return
	}
	if c.callbacks.OnProgressChanged != nil {
		c.callbacks.OnProgressChanged(state.Side, state.Progress)
	}
}

func (c *SwipeCoordinator) requestFrames() {
	if c.framesRequested {
		return
	}
	c.framesRequested = true
	c.frames.RequestFrames(func(now time.Time) bool {
		running := c.animator.Tick(now)
		if !running {
			c.framesRequested = false
		}
		return running
	})
}

func (c *SwipeCoordinator) present(side entity.Side, paths entity.PathPair) {
	if surface, ok := c.surfaces[side]; ok {
		surface.SetPaths(paths)
	}
}

func (c *SwipeCoordinator) refreshViewport() {
	if c.viewport != nil {
		c.viewportSize = c.viewport.ViewportSize()
	}
}

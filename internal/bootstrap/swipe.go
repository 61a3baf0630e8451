package bootstrap

import (
	"context"

	"github.com/bnema/swipenav/internal/domain/gesture"
	"github.com/bnema/swipenav/internal/domain/panel"
	"github.com/bnema/swipenav/internal/infrastructure/config"
	"github.com/bnema/swipenav/internal/logging"
	"github.com/bnema/swipenav/internal/ui/coordinator"
)

// Swipe bundles the gesture controller and coordinator built from one config.
type Swipe struct {
	Controller  *gesture.Controller
	Coordinator *coordinator.SwipeCoordinator
}

// NewSwipe builds a controller and coordinator for deps.Navigator and
// applies cfg. deps.Renderer is replaced by the configured CurvedRenderer.
func NewSwipe(ctx context.Context, cfg *config.Config, deps coordinator.SwipeDeps) *Swipe {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	ctx = logging.WithComponent(ctx, "swipe")

	var history gesture.HistoryState
	if deps.Navigator != nil {
		history = deps.Navigator
	}
	controller := gesture.NewController(history)
	deps.Renderer = Renderer(cfg)

	s := &Swipe{
		Controller:  controller,
		Coordinator: coordinator.NewSwipeCoordinator(ctx, controller, deps),
	}
	s.ApplyConfig(ctx, cfg)
	return s
}

// ApplyConfig pushes cfg into the controller and coordinator. Gesture flags
// take effect from the next drag.
func (s *Swipe) ApplyConfig(ctx context.Context, cfg *config.Config) {
	s.Coordinator.SetEnableBack(cfg.Gesture.EnableBack)
	s.Coordinator.SetEnableForward(cfg.Gesture.EnableForward)
	s.Controller.SetMaxSwipeDistance(cfg.Gesture.MaxSwipeDistance)
	s.Controller.SetMaxRestDuration(cfg.Gesture.MaxRestDuration())
	s.Coordinator.SetSameLocationDelay(cfg.Navigation.SameLocationDelay())
	s.Coordinator.SetRenderer(Renderer(cfg))

	logging.FromContext(ctx).Debug().
		Bool("enable_back", cfg.Gesture.EnableBack).
		Bool("enable_forward", cfg.Gesture.EnableForward).
		Float64("max_swipe_distance", cfg.Gesture.MaxSwipeDistance).
		Dur("max_rest_duration", cfg.Gesture.MaxRestDuration()).
		Msg("swipe config applied")
}

// Renderer returns the CurvedRenderer described by cfg.Panel.
func Renderer(cfg *config.Config) *panel.CurvedRenderer {
	return &panel.CurvedRenderer{
		Width:         cfg.Panel.Width,
		Height:        cfg.Panel.Height,
		MinArrowWidth: cfg.Panel.MinArrowWidth,
	}
}

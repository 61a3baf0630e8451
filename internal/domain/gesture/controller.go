// Package gesture turns a horizontal drag signal into per-side progress and a
// release decision.
package gesture

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/bnema/swipenav/internal/domain/entity"
)

var (
	// ErrNoActiveSession is returned when Update or End run outside a session.
	ErrNoActiveSession = errors.New("no active gesture session")
	// ErrInvalidViewport is returned when a session begins with a non-positive width.
	// The session still starts, but every update reports rest progress.
	ErrInvalidViewport = errors.New("invalid viewport")
)

const (
	// ThresholdRatio is the share of the viewport width a drag must cover to commit.
	ThresholdRatio = 0.25
	// DefaultMaxRestDuration is the spring-back duration of a fully progressed drag.
	DefaultMaxRestDuration = 250 * time.Millisecond
)

// HistoryState reports whether the content view can navigate in each direction.
type HistoryState interface {
	CanGoBack() bool
	CanGoForward() bool
}

// Session is the state of one continuous drag, from begin to end or cancel.
type Session struct {
	ID               uint64
	StartOffset      float64
	MaxSwipeDistance float64
	EnableBack       bool
	EnableForward    bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithMaxSwipeDistance overrides the viewport-derived commit threshold.
// Non-positive values keep the derived default.
func WithMaxSwipeDistance(distance float64) Option {
	return func(c *Controller) {
		c.maxSwipeOverride = distance
	}
}

// WithMaxRestDuration sets the spring-back duration of a fully progressed drag.
func WithMaxRestDuration(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.maxRestDuration = d
		}
	}
}

// Controller is the gesture state machine. It is not safe for concurrent use;
// every call is expected on the UI goroutine.
type Controller struct {
	history          HistoryState
	enableBack       bool
	enableForward    bool
	maxSwipeOverride float64
	maxRestDuration  time.Duration

	session  *Session
	sessions uint64
}

// NewController creates a controller with both directions enabled.
func NewController(history HistoryState, opts ...Option) *Controller {
	c := &Controller{
		history:         history,
		enableBack:      true,
		enableForward:   true,
		maxRestDuration: DefaultMaxRestDuration,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetEnableBack toggles back navigation. Takes effect at the next session.
func (c *Controller) SetEnableBack(enabled bool) {
	c.enableBack = enabled
}

// SetEnableForward toggles forward navigation. Takes effect at the next session.
func (c *Controller) SetEnableForward(enabled bool) {
	c.enableForward = enabled
}

// EnableBack reports whether back navigation is enabled for new sessions.
func (c *Controller) EnableBack() bool {
	return c.enableBack
}

// EnableForward reports whether forward navigation is enabled for new sessions.
func (c *Controller) EnableForward() bool {
	return c.enableForward
}

// SetMaxSwipeDistance overrides the commit threshold for new sessions.
// Zero restores the viewport-derived default.
func (c *Controller) SetMaxSwipeDistance(distance float64) {
	c.maxSwipeOverride = distance
}

// SetMaxRestDuration sets the spring-back duration of a fully progressed drag.
func (c *Controller) SetMaxRestDuration(d time.Duration) {
	if d >= 0 {
		c.maxRestDuration = d
	}
}

// BeginSession starts a session at the given offset. Any previous session is
// discarded. A non-positive viewport width yields a session whose progress is
// always zero, and ErrInvalidViewport is returned so the caller can report it.
func (c *Controller) BeginSession(atOffset, viewportWidth float64) error {
	c.sessions++
	s := &Session{
		ID:            c.sessions,
		StartOffset:   atOffset,
		EnableBack:    c.enableBack,
		EnableForward: c.enableForward,
	}
	c.session = s

	if !(viewportWidth > 0) || math.IsInf(viewportWidth, 0) {
		return fmt.Errorf("%w: width %g", ErrInvalidViewport, viewportWidth)
	}

	s.MaxSwipeDistance = viewportWidth * ThresholdRatio
	if c.maxSwipeOverride > 0 {
		s.MaxSwipeDistance = c.maxSwipeOverride
	}
	return nil
}

// Session returns a copy of the active session.
func (c *Controller) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// Active reports whether a session is in progress.
func (c *Controller) Active() bool {
	return c.session != nil
}

// Update computes the per-side progress for the current drag offset.
// When the drag points toward a disabled or unavailable direction both sides
// report rest.
func (c *Controller) Update(currentOffset float64) (entity.Progress, error) {
	s := c.session
	if s == nil {
		return entity.Progress{}, ErrNoActiveSession
	}

	deltaX := currentOffset - s.StartOffset
	switch {
	case deltaX > 0 && c.backPermitted(s):
		return entity.Progress{Back: entity.NormalizeProgress(deltaX, s.MaxSwipeDistance)}, nil
	case deltaX < 0 && c.forwardPermitted(s):
		return entity.Progress{Forward: entity.NormalizeProgress(deltaX, s.MaxSwipeDistance)}, nil
	default:
		return entity.Progress{}, nil
	}
}

// End decides the outcome of releasing the drag at currentOffset. Cancelled
// and failed drags are decided the same way. The session stays active until
// EndSession.
func (c *Controller) End(currentOffset float64) (entity.Decision, error) {
	s := c.session
	if s == nil {
		return entity.Decision{}, ErrNoActiveSession
	}

	deltaX := currentOffset - s.StartOffset
	if s.MaxSwipeDistance > 0 {
		if deltaX > s.MaxSwipeDistance && c.backPermitted(s) {
			return entity.CommitBack(), nil
		}
		if deltaX < -s.MaxSwipeDistance && c.forwardPermitted(s) {
			return entity.CommitForward(), nil
		}
	}
	return entity.Rest(c.restDuration(deltaX, s.MaxSwipeDistance)), nil
}

// EndSession discards the session. Safe to call repeatedly.
func (c *Controller) EndSession() {
	c.session = nil
}

func (c *Controller) restDuration(deltaX, limit float64) time.Duration {
	progress := entity.NormalizeProgress(deltaX, limit)
	return time.Duration(float64(c.maxRestDuration) * progress)
}

func (c *Controller) backPermitted(s *Session) bool {
	return s.EnableBack && c.history != nil && c.history.CanGoBack()
}

func (c *Controller) forwardPermitted(s *Session) bool {
	return s.EnableForward && c.history != nil && c.history.CanGoForward()
}

// Package headless drives the swipe coordinator without a windowing system.
// Loop stands in for a display frame clock and a main-loop timer source; the
// caller decides when time advances.
package headless

import (
	"time"
)

// DefaultFrameInterval paces frames at roughly 60 fps.
const DefaultFrameInterval = time.Second / 60

// Loop implements port.FrameClock and port.Scheduler on caller-driven time.
// It is not safe for concurrent use.
type Loop struct {
	now     func() time.Time
	onFrame func(now time.Time) bool
	timers  []*timer
}

type timer struct {
	at time.Time
	fn func()
}

// NewLoop creates a loop. now defaults to time.Now and is used to place
// timers relative to the moment they are armed.
func NewLoop(now func() time.Time) *Loop {
	if now == nil {
		now = time.Now
	}
	return &Loop{now: now}
}

// RequestFrames implements port.FrameClock.
func (l *Loop) RequestFrames(onFrame func(now time.Time) bool) {
	l.onFrame = onFrame
}

// AfterFunc implements port.Scheduler.
func (l *Loop) AfterFunc(d time.Duration, fn func()) (cancel func()) {
	t := &timer{at: l.now().Add(d), fn: fn}
	l.timers = append(l.timers, t)
	return func() { t.fn = nil }
}

// Pending reports whether frames or timers still need Advance calls.
func (l *Loop) Pending() bool {
	if l.onFrame != nil {
		return true
	}
	for _, t := range l.timers {
		if t.fn != nil {
			return true
		}
	}
	return false
}

// Animating reports whether a frame callback is installed.
func (l *Loop) Animating() bool {
	return l.onFrame != nil
}

// Advance delivers one frame at now and fires the timers due by then.
func (l *Loop) Advance(now time.Time) {
	if f := l.onFrame; f != nil {
		l.onFrame = nil
		if f(now) && l.onFrame == nil {
			l.onFrame = f
		}
	}

	var due []*timer
	kept := l.timers[:0]
	for _, t := range l.timers {
		switch {
		case t.fn == nil:
		case !now.Before(t.at):
			due = append(due, t)
		default:
			kept = append(kept, t)
		}
	}
	l.timers = kept
	for _, t := range due {
		if fn := t.fn; fn != nil {
			fn()
		}
	}
}

// Drain advances from start in steps of interval until nothing is pending
// and returns the time of the last step. setNow, if set, is called before
// every step so the caller's clock follows.
func (l *Loop) Drain(start time.Time, interval time.Duration, setNow func(time.Time)) time.Time {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	now := start
	for l.Pending() {
		now = now.Add(interval)
		if setNow != nil {
			setNow(now)
		}
		l.Advance(now)
	}
	return now
}

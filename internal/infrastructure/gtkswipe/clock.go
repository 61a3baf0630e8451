package gtkswipe

import (
	"time"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// TickClock delivers frames from a widget's frame clock.
type TickClock struct {
	widget *gtk.Widget
}

// NewTickClock returns a frame clock bound to widget.
func NewTickClock(widget gtk.Widgetter) *TickClock {
	return &TickClock{widget: gtk.BaseWidget(widget)}
}

// RequestFrames calls onFrame once per frame until it returns false.
func (c *TickClock) RequestFrames(onFrame func(now time.Time) bool) {
	c.widget.AddTickCallback(func(_ gtk.Widgetter, _ gdk.FrameClocker) bool {
		return onFrame(time.Now())
	})
}

// TimeoutScheduler runs one-shot callbacks on the GLib main loop.
type TimeoutScheduler struct{}

// AfterFunc runs fn after d on the main loop. The returned func cancels it.
func (TimeoutScheduler) AfterFunc(d time.Duration, fn func()) (cancel func()) {
	var handle glib.SourceHandle
	fired := false
	handle = glib.TimeoutAdd(uint(d.Milliseconds()), func() bool {
		fired = true
		fn()
		return false // Don't repeat
	})
	return func() {
		if !fired && handle != 0 {
			glib.SourceRemove(handle)
			handle = 0
		}
	}
}

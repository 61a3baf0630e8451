package port

import "time"

//go:generate mockgen -source=scheduler.go -destination=gomocks/mock_scheduler.go -package=mock_port

// FrameClock delivers per-frame callbacks until the callback returns false.
type FrameClock interface {
	RequestFrames(onFrame func(now time.Time) bool)
}

// Scheduler runs a function once on the UI thread after a delay.
type Scheduler interface {
	// AfterFunc schedules fn and returns a function that cancels it.
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

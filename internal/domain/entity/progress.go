package entity

import (
	"math"
	"time"
)

// Progress constants
const (
	ProgressRest = 0.0
	ProgressFull = 1.0
)

// Progress holds the per-side progress of one gesture update.
// At most one of the two fields is nonzero.
type Progress struct {
	Back    float64
	Forward float64
}

// Of returns the progress of the given side.
func (p Progress) Of(side Side) float64 {
	if side == SideForward {
		return p.Forward
	}
	return p.Back
}

// Active returns the side with nonzero progress, if any.
func (p Progress) Active() (Side, bool) {
	switch {
	case p.Back > 0:
		return SideBack, true
	case p.Forward > 0:
		return SideForward, true
	default:
		return SideBack, false
	}
}

// IsRest returns true when both panels are at rest.
func (p Progress) IsRest() bool {
	return p.Back == ProgressRest && p.Forward == ProgressRest
}

// NormalizeProgress returns min(|delta|, limit)/limit, or 0 when limit is not positive.
func NormalizeProgress(delta, limit float64) float64 {
	if !(limit > 0) || math.IsNaN(delta) {
		return ProgressRest
	}
	return math.Min(math.Abs(delta), limit) / limit
}

// ClampProgress clamps a progress value to [0,1]. NaN maps to 0.
func ClampProgress(progress float64) float64 {
	if math.IsNaN(progress) || progress < ProgressRest {
		return ProgressRest
	}
	if progress > ProgressFull {
		return ProgressFull
	}
	return progress
}

// RenderMode selects how a panel state is applied.
type RenderMode struct {
	Animated bool
	Duration time.Duration
}

// Immediate snaps to the new geometry on the next frame.
func Immediate() RenderMode {
	return RenderMode{}
}

// Animated interpolates to the new geometry over d.
// A non-positive duration behaves like Immediate.
func Animated(d time.Duration) RenderMode {
	if d <= 0 {
		return Immediate()
	}
	return RenderMode{Animated: true, Duration: d}
}

// String returns a human-readable representation of the mode.
func (m RenderMode) String() string {
	if !m.Animated {
		return "immediate"
	}
	return "animated(" + m.Duration.String() + ")"
}

// PanelState is the renderable state of one side panel, rebuilt every update.
type PanelState struct {
	Side     Side
	Progress float64
	Mode     RenderMode
}

// NewPanelState creates a panel state with clamped progress.
func NewPanelState(side Side, progress float64, mode RenderMode) PanelState {
	return PanelState{
		Side:     side,
		Progress: ClampProgress(progress),
		Mode:     mode,
	}
}

// RestState returns the zero-progress state of a panel.
func RestState(side Side, mode RenderMode) PanelState {
	return PanelState{Side: side, Progress: ProgressRest, Mode: mode}
}

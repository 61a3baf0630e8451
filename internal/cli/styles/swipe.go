package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/swipenav/internal/domain/entity"
)

const defaultBarWidth = 20

// SwipeRenderer renders gesture progress and decisions.
type SwipeRenderer struct {
	theme    *Theme
	barWidth int
}

// NewSwipeRenderer creates a new swipe renderer with the given theme.
func NewSwipeRenderer(theme *Theme) *SwipeRenderer {
	return &SwipeRenderer{theme: theme, barWidth: defaultBarWidth}
}

// ProgressBar renders progress in [0,1] as a fixed-width bar.
func (r *SwipeRenderer) ProgressBar(progress float64) string {
	filled := int(entity.ClampProgress(progress)*float64(r.barWidth) + 0.5)
	return r.theme.BarFilled.Render(strings.Repeat("█", filled)) +
		r.theme.BarEmpty.Render(strings.Repeat("░", r.barWidth-filled))
}

// RenderProgress renders one line per side.
func (r *SwipeRenderer) RenderProgress(p entity.Progress) string {
	var sb strings.Builder
	for _, side := range entity.Sides {
		sb.WriteString(fmt.Sprintf("  %s %s %s\n",
			r.theme.PanelLabel.Render(side.String()),
			r.ProgressBar(p.Of(side)),
			r.theme.Subtle.Render(fmt.Sprintf("%.2f", p.Of(side))),
		))
	}
	return sb.String()
}

// RenderStep renders one replayed drag offset.
func (r *SwipeRenderer) RenderStep(phase entity.GesturePhase, offset float64, p entity.Progress) string {
	return fmt.Sprintf("  %s %s\n%s",
		r.theme.BadgeMuted.Render(phase.String()),
		r.theme.Normal.Render(fmt.Sprintf("offset %.1f", offset)),
		r.RenderProgress(p),
	)
}

// RenderDecision renders the outcome of a release.
func (r *SwipeRenderer) RenderDecision(d entity.Decision) string {
	if side, ok := d.Side(); ok {
		icon := IconChevronLeft
		if side == entity.SideForward {
			icon = IconChevronRight
		}
		return fmt.Sprintf("\n  %s %s\n",
			lipgloss.NewStyle().Foreground(r.theme.Success).Render(icon),
			r.theme.Badge.Render(d.String()),
		)
	}
	return fmt.Sprintf("\n  %s %s %s\n",
		r.theme.Subtle.Render(IconArrow),
		r.theme.BadgeMuted.Render(d.Kind.String()),
		r.theme.Subtle.Render(d.RestDuration.String()),
	)
}

// RenderHistory renders the history entries with the current one highlighted.
func (r *SwipeRenderer) RenderHistory(entries []string, current int) string {
	var sb strings.Builder
	for i, uri := range entries {
		if i == current {
			sb.WriteString("  " + r.theme.Highlight.Render("> "+uri) + "\n")
			continue
		}
		sb.WriteString("    " + r.theme.Subtle.Render(uri) + "\n")
	}
	return sb.String()
}

// RenderChevron renders a text panel for side at progress, growing with it.
func (r *SwipeRenderer) RenderChevron(side entity.Side, progress float64) string {
	width := 1 + int(entity.ClampProgress(progress)*4+0.5)
	icon := IconChevronLeft
	if side == entity.SideForward {
		icon = IconChevronRight
	}
	pad := strings.Repeat(" ", width-1)
	if side == entity.SideBack {
		return r.theme.Chevron.Render(pad + icon)
	}
	return r.theme.Chevron.Render(icon + pad)
}

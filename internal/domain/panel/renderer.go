// Package panel computes the geometry of the edge panels shown while swiping.
package panel

import (
	"github.com/bnema/swipenav/internal/domain/entity"
)

// Default panel geometry
const (
	DefaultWidth         = 25.0  // points
	DefaultHeight        = 250.0 // points
	DefaultMinArrowWidth = 11.0  // arrow hidden below this band width

	arrowHalfWidth  = 2.8
	arrowHalfHeight = 5.6
)

// Renderer turns a panel state into drawable paths.
// Implementations must be pure: identical inputs yield identical paths.
type Renderer interface {
	Render(side entity.Side, progress float64, viewport entity.Size) entity.PathPair
}

// CurvedRenderer draws a lens-shaped panel whose belly follows progress,
// plus a chevron once the panel is wide enough.
type CurvedRenderer struct {
	Width         float64
	Height        float64
	MinArrowWidth float64
}

// NewCurvedRenderer returns a renderer with the default 25×250 panel.
func NewCurvedRenderer() *CurvedRenderer {
	return &CurvedRenderer{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		MinArrowWidth: DefaultMinArrowWidth,
	}
}

// PanelSize returns the bounds of the panel strip.
func (r *CurvedRenderer) PanelSize() entity.Size {
	return entity.Sz(r.Width, r.Height)
}

// Render implements Renderer. A viewport without area yields empty paths.
func (r *CurvedRenderer) Render(side entity.Side, progress float64, viewport entity.Size) entity.PathPair {
	if viewport.IsEmpty() || r.PanelSize().IsEmpty() {
		return entity.PathPair{}
	}
	progress = entity.ClampProgress(progress)

	return entity.PathPair{
		Curve: CurvePath(side, progress, r.Width, r.Height),
		Arrow: ArrowPath(side, progress, r.Width, r.Height, r.MinArrowWidth),
	}
}

// PanelFrame returns where the panel sits in the viewport.
func (r *CurvedRenderer) PanelFrame(side entity.Side, viewport entity.Size) entity.Rect {
	return PanelFrame(side, viewport, r.PanelSize())
}

// PanelFrame pins a panel of the given size to the side's edge, vertically centered.
func PanelFrame(side entity.Side, viewport, panel entity.Size) entity.Rect {
	frame := entity.Rect{
		Y: (viewport.Height - panel.Height) / 2,
		W: panel.Width,
		H: panel.Height,
	}
	if side == entity.SideForward {
		frame.X = viewport.Width - panel.Width
	}
	return frame
}

// CurvePath builds the closed panel outline in a width×height box.
// The belly reaches cx = width*progress on the back side and
// cx = width*(1-progress) on the forward side, at half height.
func CurvePath(side entity.Side, progress, width, height float64) entity.Path {
	if !(width > 0) || !(height > 0) {
		return nil
	}
	progress = entity.ClampProgress(progress)

	edge, cx := 0.0, width*progress
	if side == entity.SideForward {
		edge, cx = width, width*(1-progress)
	}
	cy := height / 2
	upper := height / 3
	lower := height * 2 / 3

	var p entity.Path
	p.MoveTo(entity.Pt(edge, 0))
	p.CubicTo(entity.Pt(edge, upper), entity.Pt(cx, upper), entity.Pt(cx, cy))
	p.CubicTo(entity.Pt(cx, lower), entity.Pt(edge, lower), entity.Pt(edge, height))
	p.LineTo(entity.Pt(edge, 0))
	p.ClosePath()
	return p
}

// ArrowPath builds the open chevron pointing toward the revealed edge.
// It is empty while the visible band is narrower than minWidth.
func ArrowPath(side entity.Side, progress, width, height, minWidth float64) entity.Path {
	progress = entity.ClampProgress(progress)
	realWidth := width * progress
	if !(realWidth >= minWidth) || !(realWidth > 0) || !(height > 0) {
		return nil
	}

	cy := height / 2
	mid := realWidth / 2
	tip := -arrowHalfWidth
	if side == entity.SideForward {
		mid = width - realWidth/2
		tip = arrowHalfWidth
	}

	var p entity.Path
	p.MoveTo(entity.Pt(mid-tip, cy-arrowHalfHeight))
	p.LineTo(entity.Pt(mid+tip, cy))
	p.LineTo(entity.Pt(mid-tip, cy+arrowHalfHeight))
	return p
}

// Package paint replays panel paths onto a vector canvas such as a cairo context.
package paint

import (
	"github.com/bnema/swipenav/internal/domain/entity"
)

// Canvas is the path-building subset of a cairo context.
type Canvas interface {
	NewPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// LineCap is the shape drawn at the open ends of a stroke.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin is the shape drawn where two stroke segments meet.
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// Painter fills and strokes the current path of a Canvas.
type Painter interface {
	Canvas
	SetSourceRGBA(r, g, b, a float64)
	SetLineWidth(width float64)
	SetLineCap(lineCap LineCap)
	SetLineJoin(lineJoin LineJoin)
	Fill()
	Stroke()
}

// Trace replaces the current path of c with p.
func Trace(c Canvas, p entity.Path) {
	c.NewPath()
	for _, el := range p {
		switch el.Kind {
		case entity.MoveToKind:
			c.MoveTo(el.P0.X, el.P0.Y)
		case entity.LineToKind:
			c.LineTo(el.P0.X, el.P0.Y)
		case entity.CubicToKind:
			c.CurveTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case entity.ClosePathKind:
			c.ClosePath()
		}
	}
}

// Draw fills the curve and strokes the arrow of pair with round caps and
// joins. Empty paths are skipped.
func Draw(p Painter, pair entity.PathPair, style entity.PanelStyle) {
	if !pair.Curve.IsEmpty() {
		Trace(p, pair.Curve)
		p.SetSourceRGBA(style.Fill.R, style.Fill.G, style.Fill.B, style.FillOpacity)
		p.Fill()
	}
	if !pair.Arrow.IsEmpty() {
		Trace(p, pair.Arrow)
		p.SetSourceRGBA(style.Arrow.R, style.Arrow.G, style.Arrow.B, 1)
		p.SetLineWidth(style.ArrowLineWidth)
		p.SetLineCap(LineCapRound)
		p.SetLineJoin(LineJoinRound)
		p.Stroke()
	}
}

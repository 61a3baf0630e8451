// Package entity defines domain entities for the swipe navigation overlay.
package entity

import (
	"fmt"
	"math"
	"slices"
)

// Point is a position in panel-local coordinates (origin top-left).
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point{
		X: pt.X + (o.X-pt.X)*t,
		Y: pt.Y + (o.Y-pt.Y)*t,
	}
}

// Size is a width × height extent.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// IsEmpty reports whether the size has no area. NaN counts as empty.
func (sz Size) IsEmpty() bool {
	return !(sz.Width > 0) || !(sz.Height > 0)
}

// Rect represents a panel's position and size inside the viewport.
type Rect struct {
	X, Y float64 // Top-left position relative to the viewport
	W, H float64 // Width and height
}

// Size returns the extent of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.W, Height: r.H}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// PathElementKind is the drawing command of a path element.
type PathElementKind int

const (
	// MoveToKind starts a new subpath at P0.
	MoveToKind PathElementKind = iota + 1
	// LineToKind draws a line to P0.
	LineToKind
	// CubicToKind draws a cubic Bézier with controls P0, P1 ending at P2.
	CubicToKind
	// ClosePathKind closes the current subpath.
	ClosePathKind
)

// PathElement is one command of a vector path.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo%s", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo%s", el.P0)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", el.P0, el.P1, el.P2)
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidPathElement"
	}
}

// End returns the point the pen rests on after the element.
// ClosePath has no end point of its own.
func (el PathElement) End() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func (el PathElement) lerp(o PathElement, t float64) PathElement {
	return PathElement{
		Kind: el.Kind,
		P0:   el.P0.Lerp(o.P0, t),
		P1:   el.P1.Lerp(o.P1, t),
		P2:   el.P2.Lerp(o.P2, t),
	}
}

func (el PathElement) isNaN() bool {
	for _, p := range [...]Point{el.P0, el.P1, el.P2} {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			return true
		}
	}
	return false
}

// Path is an ordered list of drawing commands. The zero value is an empty path.
type Path []PathElement

// MoveTo starts a new subpath.
func (p *Path) MoveTo(pt Point) { *p = append(*p, PathElement{Kind: MoveToKind, P0: pt}) }

// LineTo appends a straight segment.
func (p *Path) LineTo(pt Point) { *p = append(*p, PathElement{Kind: LineToKind, P0: pt}) }

// CubicTo appends a cubic Bézier segment.
func (p *Path) CubicTo(c1, c2, end Point) {
	*p = append(*p, PathElement{Kind: CubicToKind, P0: c1, P1: c2, P2: end})
}

// ClosePath closes the current subpath.
func (p *Path) ClosePath() { *p = append(*p, PathElement{Kind: ClosePathKind}) }

// IsEmpty reports whether the path draws nothing.
func (p Path) IsEmpty() bool {
	return len(p) == 0
}

// IsNaN reports whether any coordinate of the path is NaN.
func (p Path) IsNaN() bool {
	return slices.ContainsFunc(p, PathElement.isNaN)
}

// Vertices returns the on-curve points of the path in drawing order.
func (p Path) Vertices() []Point {
	vertices := make([]Point, 0, len(p))
	for _, el := range p {
		if pt, ok := el.End(); ok {
			vertices = append(vertices, pt)
		}
	}
	return vertices
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	return slices.Clone(p)
}

// Equal reports whether both paths have identical commands and coordinates.
func (p Path) Equal(o Path) bool {
	return slices.Equal(p, o)
}

// Compatible reports whether p and o have the same command structure and can
// therefore be interpolated element by element.
func (p Path) Compatible(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i].Kind != o[i].Kind {
			return false
		}
	}
	return true
}

// Lerp interpolates every coordinate from p toward o by t in [0,1].
// It returns false when the paths are not compatible.
func (p Path) Lerp(o Path, t float64) (Path, bool) {
	if !p.Compatible(o) {
		return nil, false
	}
	if len(p) == 0 {
		return nil, true
	}
	out := make(Path, len(p))
	for i := range p {
		out[i] = p[i].lerp(o[i], t)
	}
	return out, true
}

// PathPair is the output of rendering one side panel.
type PathPair struct {
	// Curve is the filled lens-shaped panel outline (closed).
	Curve Path
	// Arrow is the stroked chevron (open). Empty until the panel is wide enough.
	Arrow Path
}

// IsEmpty reports whether neither path draws anything.
func (pp PathPair) IsEmpty() bool {
	return pp.Curve.IsEmpty() && pp.Arrow.IsEmpty()
}

// Equal reports whether both pairs hold identical geometry.
func (pp PathPair) Equal(o PathPair) bool {
	return pp.Curve.Equal(o.Curve) && pp.Arrow.Equal(o.Arrow)
}

// Clone returns an independent copy of the pair.
func (pp PathPair) Clone() PathPair {
	return PathPair{Curve: pp.Curve.Clone(), Arrow: pp.Arrow.Clone()}
}

// Lerp interpolates each path of the pair independently. A path whose
// structure differs from its target jumps straight to the target.
func (pp PathPair) Lerp(o PathPair, t float64) PathPair {
	curve, ok := pp.Curve.Lerp(o.Curve, t)
	if !ok {
		curve = o.Curve.Clone()
	}
	arrow, ok := pp.Arrow.Lerp(o.Arrow, t)
	if !ok {
		arrow = o.Arrow.Clone()
	}
	return PathPair{Curve: curve, Arrow: arrow}
}

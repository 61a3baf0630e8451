package gtkswipe

import (
	"github.com/diamondburned/gotk4/pkg/cairo"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/swipenav/internal/domain/entity"
	"github.com/bnema/swipenav/internal/ui/paint"
)

// PanelWidget is a DrawingArea that paints one side panel.
type PanelWidget struct {
	area  *gtk.DrawingArea
	paths entity.PathPair
	style entity.PanelStyle
}

// NewPanelWidget creates the drawing area for side, pinned to its edge and
// vertically centered. It never receives pointer events.
func NewPanelWidget(side entity.Side, size entity.Size, style entity.PanelStyle) *PanelWidget {
	p := &PanelWidget{
		area:  gtk.NewDrawingArea(),
		style: style,
	}
	p.area.SetContentWidth(int(size.Width + 0.5))
	p.area.SetContentHeight(int(size.Height + 0.5))
	p.area.SetVAlign(gtk.AlignCenter)
	if side == entity.SideBack {
		p.area.SetHAlign(gtk.AlignStart)
	} else {
		p.area.SetHAlign(gtk.AlignEnd)
	}
	p.area.SetCanTarget(false) // Don't intercept pointer events
	p.area.SetCanFocus(false)
	p.area.AddCSSClass("swipenav-panel")
	p.area.SetDrawFunc(func(_ *gtk.DrawingArea, cr *cairo.Context, _, _ int) {
		paint.Draw(cairoPainter{cr}, p.paths, p.style)
	})
	return p
}

// cairoPainter maps paint line styles onto a cairo context.
type cairoPainter struct {
	*cairo.Context
}

func (c cairoPainter) SetLineCap(lineCap paint.LineCap) {
	switch lineCap {
	case paint.LineCapRound:
		c.Context.SetLineCap(cairo.LineCapRound)
	case paint.LineCapSquare:
		c.Context.SetLineCap(cairo.LineCapSquare)
	default:
		c.Context.SetLineCap(cairo.LineCapButt)
	}
}

func (c cairoPainter) SetLineJoin(lineJoin paint.LineJoin) {
	switch lineJoin {
	case paint.LineJoinRound:
		c.Context.SetLineJoin(cairo.LineJoinRound)
	case paint.LineJoinBevel:
		c.Context.SetLineJoin(cairo.LineJoinBevel)
	default:
		c.Context.SetLineJoin(cairo.LineJoinMiter)
	}
}

// Widget returns the underlying GTK widget.
func (p *PanelWidget) Widget() gtk.Widgetter {
	return p.area
}

// SetPaths implements port.PanelSurface.
func (p *PanelWidget) SetPaths(paths entity.PathPair) {
	p.paths = paths
	p.area.QueueDraw()
}

// SetStyle changes the colors used on the next draw.
func (p *PanelWidget) SetStyle(style entity.PanelStyle) {
	p.style = style
	p.area.QueueDraw()
}

// SetSize changes the panel bounds.
func (p *PanelWidget) SetSize(size entity.Size) {
	p.area.SetContentWidth(int(size.Width + 0.5))
	p.area.SetContentHeight(int(size.Height + 0.5))
}

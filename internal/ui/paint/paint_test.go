package paint

import (
	"fmt"
	"testing"

	"github.com/bnema/swipenav/internal/domain/entity"
	"github.com/bnema/swipenav/internal/domain/panel"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	ops []string
}

func (r *recorder) add(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *recorder) NewPath()            { r.add("new") }
func (r *recorder) MoveTo(x, y float64) { r.add("M %g %g", x, y) }
func (r *recorder) LineTo(x, y float64) { r.add("L %g %g", x, y) }
func (r *recorder) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	r.add("C %g %g %g %g %g %g", x1, y1, x2, y2, x3, y3)
}
func (r *recorder) ClosePath()                        { r.add("Z") }
func (r *recorder) SetSourceRGBA(cr, g, b, a float64) { r.add("rgba %g %g %g %g", cr, g, b, a) }
func (r *recorder) SetLineWidth(w float64)            { r.add("width %g", w) }
func (r *recorder) SetLineCap(c LineCap)              { r.add("cap %d", c) }
func (r *recorder) SetLineJoin(j LineJoin)            { r.add("join %d", j) }
func (r *recorder) Fill()                             { r.add("fill") }
func (r *recorder) Stroke()                           { r.add("stroke") }

func TestTrace(t *testing.T) {
	var p entity.Path
	p.MoveTo(entity.Pt(0, 0))
	p.CubicTo(entity.Pt(0, 1), entity.Pt(2, 1), entity.Pt(2, 2))
	p.LineTo(entity.Pt(0, 0))
	p.ClosePath()

	r := &recorder{}
	Trace(r, p)

	assert.Equal(t, []string{"new", "M 0 0", "C 0 1 2 1 2 2", "L 0 0", "Z"}, r.ops)
}

func TestDraw_FillsCurveAndStrokesArrow(t *testing.T) {
	pair := panel.NewCurvedRenderer().Render(entity.SideBack, 1, entity.Sz(300, 600))
	style := entity.DefaultPanelStyle()

	r := &recorder{}
	Draw(r, pair, style)

	assert.Contains(t, r.ops, "rgba 0 0 0 0.7")
	assert.Contains(t, r.ops, "fill")
	assert.Equal(t, []string{
		"rgba 1 1 1 1",
		"width 1.5",
		fmt.Sprintf("cap %d", LineCapRound),
		fmt.Sprintf("join %d", LineJoinRound),
		"stroke",
	}, r.ops[len(r.ops)-5:])
}

func TestDraw_EmptyPairDrawsNothing(t *testing.T) {
	r := &recorder{}
	Draw(r, entity.PathPair{}, entity.DefaultPanelStyle())

	assert.Empty(t, r.ops)
}

package panel_test

import (
	"testing"

	"github.com/bnema/swipenav/internal/domain/entity"
	"github.com/bnema/swipenav/internal/domain/panel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ panel.Renderer = (*panel.CurvedRenderer)(nil)

var viewport = entity.Sz(300, 600)

func TestCurvePath_MidpointFollowsProgress(t *testing.T) {
	r := panel.NewCurvedRenderer()

	for progress := 0.0; progress <= 1.0; progress += 0.05 {
		back := r.Render(entity.SideBack, progress, viewport)
		forward := r.Render(entity.SideForward, progress, viewport)

		require.Len(t, back.Curve, 5)
		require.Len(t, forward.Curve, 5)

		mid := back.Curve[1].P2
		assert.InDelta(t, 25*progress, mid.X, 1e-9, "back progress %v", progress)
		assert.InDelta(t, 125, mid.Y, 1e-9)

		mid = forward.Curve[1].P2
		assert.InDelta(t, 25*(1-progress), mid.X, 1e-9, "forward progress %v", progress)
	}
}

func TestCurvePath_Shape(t *testing.T) {
	p := panel.CurvePath(entity.SideForward, 0.4, 25, 250)

	want := entity.Path{
		{Kind: entity.MoveToKind, P0: entity.Pt(25, 0)},
		{Kind: entity.CubicToKind, P0: entity.Pt(25, 250.0/3), P1: entity.Pt(15, 250.0/3), P2: entity.Pt(15, 125)},
		{Kind: entity.CubicToKind, P0: entity.Pt(15, 500.0/3), P1: entity.Pt(25, 500.0/3), P2: entity.Pt(25, 250)},
		{Kind: entity.LineToKind, P0: entity.Pt(25, 0)},
		{Kind: entity.ClosePathKind},
	}
	require.Len(t, p, len(want))
	for i := range want {
		assert.Equal(t, want[i].Kind, p[i].Kind)
		assert.InDelta(t, want[i].P0.X, p[i].P0.X, 1e-9)
		assert.InDelta(t, want[i].P0.Y, p[i].P0.Y, 1e-9)
		assert.InDelta(t, want[i].P2.X, p[i].P2.X, 1e-9)
		assert.InDelta(t, want[i].P2.Y, p[i].P2.Y, 1e-9)
	}
}

func TestArrowPath_Visibility(t *testing.T) {
	r := panel.NewCurvedRenderer()

	tests := []struct {
		name     string
		progress float64
		visible  bool
	}{
		{"rest", 0, false},
		{"just below", 0.43, false},
		{"exact threshold", 0.44, true},
		{"full", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, side := range entity.Sides {
				arrow := r.Render(side, tt.progress, viewport).Arrow
				if tt.visible {
					assert.Len(t, arrow.Vertices(), 3, side.String())
				} else {
					assert.True(t, arrow.IsEmpty(), side.String())
				}
			}
		})
	}
}

func TestArrowPath_PointsTowardEdge(t *testing.T) {
	back := panel.ArrowPath(entity.SideBack, 1, 25, 250, 11)
	require.Len(t, back, 3)
	assert.InDelta(t, 12.5+2.8, back[0].P0.X, 1e-9)
	assert.InDelta(t, 125-5.6, back[0].P0.Y, 1e-9)
	assert.InDelta(t, 12.5-2.8, back[1].P0.X, 1e-9)
	assert.InDelta(t, 125, back[1].P0.Y, 1e-9)
	assert.InDelta(t, 125+5.6, back[2].P0.Y, 1e-9)

	forward := panel.ArrowPath(entity.SideForward, 0.8, 25, 250, 11)
	require.Len(t, forward, 3)
	mid := 25 - 20.0/2
	assert.InDelta(t, mid-2.8, forward[0].P0.X, 1e-9)
	assert.InDelta(t, mid+2.8, forward[1].P0.X, 1e-9)
}

func TestRender_Idempotent(t *testing.T) {
	r := panel.NewCurvedRenderer()

	a := r.Render(entity.SideBack, 0.73, viewport)
	b := r.Render(entity.SideBack, 0.73, viewport)
	assert.True(t, a.Equal(b))
}

func TestRender_DegenerateInputs(t *testing.T) {
	r := panel.NewCurvedRenderer()

	assert.True(t, r.Render(entity.SideBack, 0.5, entity.Sz(0, 0)).IsEmpty())
	assert.True(t, r.Render(entity.SideForward, 0.5, entity.Sz(300, 0)).IsEmpty())

	clamped := r.Render(entity.SideBack, 7, viewport)
	assert.InDelta(t, 25, clamped.Curve[1].P2.X, 1e-9)

	negative := r.Render(entity.SideBack, -1, viewport)
	assert.InDelta(t, 0, negative.Curve[1].P2.X, 1e-9)
	assert.True(t, negative.Arrow.IsEmpty())
}

func TestPanelFrame(t *testing.T) {
	r := panel.NewCurvedRenderer()

	back := r.PanelFrame(entity.SideBack, viewport)
	assert.Equal(t, entity.Rect{X: 0, Y: 175, W: 25, H: 250}, back)

	forward := r.PanelFrame(entity.SideForward, viewport)
	assert.Equal(t, entity.Rect{X: 275, Y: 175, W: 25, H: 250}, forward)
}
